// ABOUTME: Pipeline orchestrator: extract, score concepts, classify, generate, record
// ABOUTME: Owns the shared stores and background tasks; every frontend calls Process

package bot

import (
	"context"
	"os"
	"time"

	"github.com/mauromedda/campusbot-go/internal/config"
	"github.com/mauromedda/campusbot-go/internal/convo"
	"github.com/mauromedda/campusbot-go/internal/eventbus"
	"github.com/mauromedda/campusbot-go/internal/intent"
	"github.com/mauromedda/campusbot-go/internal/knowledge"
	"github.com/mauromedda/campusbot-go/internal/log"
	"github.com/mauromedda/campusbot-go/internal/nlp"
	"github.com/mauromedda/campusbot-go/internal/respond"
	"github.com/mauromedda/campusbot-go/internal/scrape"
	"github.com/mauromedda/campusbot-go/internal/semantic"
	"github.com/mauromedda/campusbot-go/internal/telemetry"
	"github.com/mauromedda/campusbot-go/pkg/api"
)

// sweepInterval is how often expired sessions are collected.
const sweepInterval = time.Minute

// TurnEvent is published after every processed turn.
type TurnEvent struct {
	SessionID    string
	Message      string
	Intent       string
	Confidence   float64
	UsedFallback bool
	Duration     time.Duration
}

// Bot wires the full pipeline together.
type Bot struct {
	cfg       *config.Settings
	extractor *nlp.Extractor
	matcher   *semantic.Matcher
	table     *intent.Table
	classify  intent.Classifier
	sessions  *convo.Store
	generator *respond.Generator
	knowledge *knowledge.Manager
	metrics   *telemetry.Collector

	// Events carries one TurnEvent per processed message.
	Events *eventbus.Bus[TurnEvent]

	lexWatcher *config.Watcher
}

// New builds a bot from settings. The knowledge cache is optional: if
// it cannot be opened the bot runs without persistence.
func New(cfg *config.Settings, metrics *telemetry.Collector) (*Bot, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	lex, err := nlp.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		return nil, err
	}
	extractor := nlp.NewExtractor(lex)

	var cache *knowledge.Cache
	if c, err := knowledge.OpenCache(cfg.CacheFile(), cfg.ScrapeInterval()); err == nil {
		cache = c
	} else {
		log.Warn("knowledge cache unavailable: %v", err)
	}

	table := intent.NewTable(cfg.WeightsFile())

	b := &Bot{
		cfg:       cfg,
		extractor: extractor,
		matcher:   semantic.NewMatcher(),
		table:     table,
		classify:  intent.NewWeighted(table),
		sessions:  convo.NewStore(cfg.SessionTTL()),
		generator: respond.New(),
		knowledge: knowledge.NewManager(scrape.New(cfg.BaseURL), cache, metrics, cfg.ScrapeInterval()),
		metrics:   metrics,
		Events:    eventbus.New[TurnEvent](),
	}

	if cfg.LexiconPath != "" {
		b.lexWatcher = config.NewWatcher(cfg.LexiconPath, b.reloadLexicon)
	}
	return b, nil
}

// Start launches the background tasks: session sweeping, knowledge
// refresh, weight autosave, and lexicon watching. They stop when ctx
// is done.
func (b *Bot) Start(ctx context.Context) {
	b.sessions.StartSweeper(ctx, sweepInterval)
	b.knowledge.StartBackground(ctx)

	if b.lexWatcher != nil {
		b.lexWatcher.Start()
		go func() {
			<-ctx.Done()
			b.lexWatcher.Stop()
		}()
	}

	go func() {
		ticker := time.NewTicker(b.cfg.AutosaveInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				if err := b.table.Save(); err != nil {
					log.Warn("saving weights on shutdown: %v", err)
				}
				return
			case <-ticker.C:
				if err := b.table.Save(); err != nil {
					log.Warn("autosaving weights: %v", err)
				}
			}
		}
	}()
}

// Process runs one message through the full pipeline and returns the
// wire-level response. It never fails on well-formed text.
func (b *Bot) Process(ctx context.Context, message, sessionID string) api.ChatResponse {
	start := time.Now()

	analysis := b.extractor.Extract(message)
	sess, created := b.sessions.GetOrCreate(sessionID)
	if created {
		log.Debug("new session %s", sess.ID)
	}

	concepts := b.matcher.ScoreConcepts(analysis)
	decision := b.classify.Classify(intent.Request{
		Text:     message,
		Analysis: analysis,
		Recent:   sess.RecentIntents(),
		Concepts: concepts,
	})

	content := b.knowledge.Search(message)
	result := b.generator.Generate(decision, analysis, sess, content, b.harvestedCTAs())

	sess.RecordTurn(convo.Turn{
		Message:     message,
		Analysis:    analysis,
		Intent:      decision.Intent,
		Confidence:  decision.Confidence,
		Suggestions: result.Suggestions,
		Timestamp:   time.Now(),
	})

	elapsed := time.Since(start)
	b.metrics.RecordRequest()
	b.metrics.RecordClassification(decision.Confidence, decision.UsedFallback)
	b.Events.Publish(TurnEvent{
		SessionID:    sess.ID,
		Message:      message,
		Intent:       decision.Intent,
		Confidence:   decision.Confidence,
		UsedFallback: decision.UsedFallback,
		Duration:     elapsed,
	})

	source := "weighted"
	if decision.UsedFallback {
		source = "rules"
	}
	return api.ChatResponse{
		Reply:        result.Reply,
		Intent:       decision.Intent,
		Confidence:   decision.Confidence,
		SessionID:    sess.ID,
		Suggestions:  result.Suggestions,
		CTAs:         result.CTAs,
		NLP:          toAPIAnalysis(analysis),
		UsedFallback: decision.UsedFallback,
		ResponseTime: elapsed.Seconds(),
		Source:       source,
	}
}

// harvestedCTAs converts the knowledge base's scraped application
// links into CTA entries for the generator.
func (b *Bot) harvestedCTAs() []api.CTA {
	links := b.knowledge.Links()
	if len(links) == 0 {
		return nil
	}
	ctas := make([]api.CTA, len(links))
	for i, l := range links {
		ctas[i] = api.CTA{Text: l.Text, URL: l.URL}
	}
	return ctas
}

// SaveWeights persists learned intent weights now.
func (b *Bot) SaveWeights() error {
	return b.table.Save()
}

// RefreshKnowledge scrapes the site once, outside the background
// schedule.
func (b *Bot) RefreshKnowledge(ctx context.Context) error {
	return b.knowledge.Refresh(ctx)
}

// Health summarizes service state for the health endpoint.
func (b *Bot) Health() api.HealthResponse {
	status, last := b.knowledge.Status()
	h := api.HealthResponse{
		Status:            "healthy",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		KnowledgeSections: b.knowledge.Sections(),
		ScrapeStatus:      status,
	}
	if !last.IsZero() {
		h.LastScrape = last.UTC().Format(time.RFC3339)
	}
	return h
}

// Metrics snapshots the service counters.
func (b *Bot) Metrics() api.MetricsResponse {
	return b.metrics.Snapshot(b.sessions.Len())
}

func (b *Bot) reloadLexicon() {
	lex, err := nlp.LoadLexicon(b.cfg.LexiconPath)
	if err != nil {
		log.Warn("reloading lexicon: %v", err)
		return
	}
	b.extractor.SetLexicon(lex)
	log.Info("lexicon reloaded from %s", b.cfg.LexiconPath)
}

func toAPIAnalysis(a nlp.Analysis) api.Analysis {
	entities := make(map[string][]string, len(a.Entities))
	for cat, terms := range a.Entities {
		entities[cat] = terms
	}
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return api.Analysis{
		Entities:     entities,
		Keywords:     keywords,
		QuestionType: string(a.QuestionType),
		Sentiment:    string(a.Sentiment),
		Signals: api.Signals{
			Urgency:       a.Signals.Urgency,
			Comparison:    a.Signals.Comparison,
			SeekingAdvice: a.Signals.SeekingAdvice,
			WantsDetails:  a.Signals.WantsDetails,
		},
	}
}
