// ABOUTME: Wire types shared by the HTTP server, the chat TUI, and ask mode
// ABOUTME: JSON shapes mirror the /chat, /health, and /metrics endpoints

package api

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// CTA is a call-to-action link attached to a reply.
type CTA struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Signals holds the independent intent signals detected in a message.
type Signals struct {
	Urgency       bool `json:"urgency"`
	Comparison    bool `json:"comparison"`
	SeekingAdvice bool `json:"seeking_advice"`
	WantsDetails  bool `json:"wants_details"`
}

// Analysis is the subset of the message analysis exposed to clients.
type Analysis struct {
	Entities     map[string][]string `json:"entities"`
	Keywords     []string            `json:"keywords"`
	QuestionType string              `json:"question_type"`
	Sentiment    string              `json:"sentiment"`
	Signals      Signals             `json:"intent_signals"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Reply        string   `json:"reply"`
	Intent       string   `json:"intent"`
	Confidence   float64  `json:"confidence"`
	SessionID    string   `json:"session_id"`
	Suggestions  []string `json:"suggestions"`
	CTAs         []CTA    `json:"ctas"`
	NLP          Analysis `json:"nlp_analysis"`
	UsedFallback bool     `json:"used_fallback"`
	ResponseTime float64  `json:"response_time"`
	Source       string   `json:"source"`
}

// ErrorResponse is returned for any non-200 status.
type ErrorResponse struct {
	Error string `json:"error"`
	Reply string `json:"reply,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status            string `json:"status"`
	Timestamp         string `json:"timestamp"`
	KnowledgeSections int    `json:"knowledge_sections"`
	ScrapeStatus      string `json:"scraping_status"`
	LastScrape        string `json:"last_scrape,omitempty"`
}

// MetricsResponse is the body of GET /metrics.
type MetricsResponse struct {
	UptimeSeconds   float64 `json:"uptime_seconds"`
	TotalRequests   uint64  `json:"total_requests"`
	TotalErrors     uint64  `json:"total_errors"`
	Classifications uint64  `json:"classifications"`
	Fallbacks       uint64  `json:"fallback_invocations"`
	AvgConfidence   float64 `json:"avg_confidence"`
	ActiveSessions  int     `json:"active_sessions"`
	ScrapeSuccess   uint64  `json:"scrape_success"`
	ScrapeFailure   uint64  `json:"scrape_failure"`
	CacheHits       uint64  `json:"cache_hits"`
	CacheMisses     uint64  `json:"cache_misses"`
}
