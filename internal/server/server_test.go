// ABOUTME: End-to-end handler tests over httptest with a real bot behind them
// ABOUTME: Covers validation failures, rate limiting, and the JSON endpoints

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mauromedda/campusbot-go/internal/bot"
	"github.com/mauromedda/campusbot-go/internal/config"
	"github.com/mauromedda/campusbot-go/internal/telemetry"
	"github.com/mauromedda/campusbot-go/pkg/api"
)

func newTestServer(t *testing.T, mutate func(*config.Settings)) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	if mutate != nil {
		mutate(cfg)
	}

	metrics := telemetry.NewCollector()
	b, err := bot.New(cfg, metrics)
	if err != nil {
		t.Fatalf("bot.New: %v", err)
	}

	ts := httptest.NewServer(New(b, cfg, metrics).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postChat(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/chat", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /chat: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func TestChatHappyPath(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	resp := postChat(t, ts, `{"message": "hello"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	chat := decode[api.ChatResponse](t, resp)
	if chat.Intent != "greeting" {
		t.Errorf("intent = %q, want greeting", chat.Intent)
	}
	if chat.SessionID == "" {
		t.Error("expected a session id")
	}
	if chat.Reply == "" {
		t.Error("expected a non-empty reply")
	}
}

func TestChatSanitizesMarkup(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	resp := postChat(t, ts, `{"message": "hello <script>alert(1)</script>"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	chat := decode[api.ChatResponse](t, resp)
	if chat.Intent != "greeting" {
		t.Errorf("intent = %q, want greeting", chat.Intent)
	}
}

func TestChatInvalidJSON(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	resp := postChat(t, ts, `{"message": `)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	errResp := decode[api.ErrorResponse](t, resp)
	if errResp.Error == "" {
		t.Error("expected an error message")
	}
}

func TestChatEmptyMessage(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{"message": "<>"}`} {
		resp := postChat(t, ts, body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestChatMessageTooLong(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	long := strings.Repeat("a", 501)
	resp := postChat(t, ts, `{"message": "`+long+`"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", resp.StatusCode)
	}
}

func TestChatRateLimited(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, func(cfg *config.Settings) {
		cfg.RateLimitRequests = 2
	})

	for i := 0; i < 2; i++ {
		resp := postChat(t, ts, `{"message": "hello"}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, resp.StatusCode)
		}
	}
	resp := postChat(t, ts, `{"message": "hello"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.StatusCode)
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	info := decode[map[string]string](t, resp)
	if info["service"] != "campusbot" {
		t.Errorf("service = %q", info["service"])
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	health := decode[api.HealthResponse](t, resp)
	if health.Status != "healthy" {
		t.Errorf("status = %q, want healthy", health.Status)
	}
	if health.KnowledgeSections == 0 {
		t.Error("expected fallback knowledge sections")
	}
}

func TestMetricsCountRequests(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	postChat(t, ts, `{"message": "hello"}`).Body.Close()
	postChat(t, ts, `{"message": "tell me about your programs"}`).Body.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	metrics := decode[api.MetricsResponse](t, resp)
	if metrics.TotalRequests != 2 {
		t.Errorf("total_requests = %d, want 2", metrics.TotalRequests)
	}
	if metrics.Classifications != 2 {
		t.Errorf("classifications = %d, want 2", metrics.Classifications)
	}
}

func TestValidationErrorsAreCounted(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	postChat(t, ts, `{"message": ""}`).Body.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	metrics := decode[api.MetricsResponse](t, resp)
	if metrics.TotalErrors != 1 {
		t.Errorf("total_errors = %d, want 1", metrics.TotalErrors)
	}
}

func TestSaveModel(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/save-model", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /save-model: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminEndpointsRateLimited(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	for i := 0; i < adminRateLimit; i++ {
		resp, err := http.Post(ts.URL+"/save-model", "application/json", nil)
		if err != nil {
			t.Fatalf("POST /save-model: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, resp.StatusCode)
		}
	}

	resp, err := http.Post(ts.URL+"/save-model", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /save-model: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.StatusCode)
	}
}

func TestRefreshAgainstLocalSite(t *testing.T) {
	t.Parallel()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>MPTI</title></head><body><p>Technical training programs.</p></body></html>`))
	}))
	defer origin.Close()

	ts := newTestServer(t, func(cfg *config.Settings) {
		cfg.BaseURL = origin.URL
	})

	resp, err := http.Post(ts.URL+"/refresh", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /refresh: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestChatSurfacesHarvestedApplicationLink(t *testing.T) {
	t.Parallel()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Admissions</title></head><body>` +
			`<p>Join our next intake.</p>` +
			`<a href="https://forms.office.com/r/mpti-intake">Apply Online Now</a>` +
			`</body></html>`))
	}))
	defer origin.Close()

	ts := newTestServer(t, func(cfg *config.Settings) {
		cfg.BaseURL = origin.URL
	})

	resp, err := http.Post(ts.URL+"/refresh", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /refresh: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh status = %d, want 200", resp.StatusCode)
	}

	chat := decode[api.ChatResponse](t, postChat(t, ts, `{"message": "how do I apply for admission"}`))
	if chat.Intent != "application" {
		t.Fatalf("intent = %q, want application", chat.Intent)
	}
	found := false
	for _, cta := range chat.CTAs {
		if cta.URL == "https://forms.office.com/r/mpti-intake" {
			found = true
		}
	}
	if !found {
		t.Errorf("CTAs = %v; want the scraped intake form", chat.CTAs)
	}
}

func TestRefreshFailure(t *testing.T) {
	t.Parallel()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer origin.Close()

	ts := newTestServer(t, func(cfg *config.Settings) {
		cfg.BaseURL = origin.URL
	})

	resp, err := http.Post(ts.URL+"/refresh", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /refresh: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/chat")
	if err != nil {
		t.Fatalf("GET /chat: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}
