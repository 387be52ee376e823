// ABOUTME: HTTP surface: /chat, /health, /metrics, /refresh, /save-model, and /
// ABOUTME: Thin JSON handlers over the bot pipeline with validation and rate limiting

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mauromedda/campusbot-go/internal/bot"
	"github.com/mauromedda/campusbot-go/internal/config"
	securehttp "github.com/mauromedda/campusbot-go/internal/http"
	"github.com/mauromedda/campusbot-go/internal/log"
	"github.com/mauromedda/campusbot-go/internal/telemetry"
	"github.com/mauromedda/campusbot-go/pkg/api"
)

// adminRateLimit caps /refresh and /save-model per client per window.
const adminRateLimit = 2

// Server exposes the bot over HTTP.
type Server struct {
	bot          *bot.Bot
	cfg          *config.Settings
	metrics      *telemetry.Collector
	limiter      *RateLimiter
	adminLimiter *RateLimiter
}

func New(b *bot.Bot, cfg *config.Settings, metrics *telemetry.Collector) *Server {
	return &Server{
		bot:          b,
		cfg:          cfg,
		metrics:      metrics,
		limiter:      NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow()),
		adminLimiter: NewRateLimiter(adminRateLimit, cfg.RateLimitWindow()),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /metrics", s.handleMetrics)
	mux.HandleFunc("POST /refresh", s.handleRefresh)
	mux.HandleFunc("POST /save-model", s.handleSaveModel)
	return mux
}

// ListenAndServe runs the server until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := securehttp.APIServer(s.Handler(), s.cfg.Addr)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("listening on %s", s.cfg.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "campusbot",
		"status":  "running",
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
		return
	}

	var req api.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	message, err := ValidateMessage(req.Message, s.cfg.MaxMessageLength)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, ErrEmptyMessage) {
			status = http.StatusRequestEntityTooLarge
		}
		s.fail(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.bot.Process(r.Context(), message, req.SessionID))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bot.Health())
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bot.Metrics())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !s.adminLimiter.Allow(clientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
		return
	}
	if err := s.bot.RefreshKnowledge(r.Context()); err != nil {
		s.fail(w, http.StatusBadGateway, "refresh failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "knowledge refreshed"})
}

func (s *Server) handleSaveModel(w http.ResponseWriter, r *http.Request) {
	if !s.adminLimiter.Allow(clientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
		return
	}
	if err := s.bot.SaveWeights(); err != nil {
		log.Warn("saving weights: %v", err)
		s.fail(w, http.StatusInternalServerError, "failed to save model")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "model saved"})
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.metrics.RecordError()
	writeJSON(w, status, api.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encoding response: %v", err)
	}
}
