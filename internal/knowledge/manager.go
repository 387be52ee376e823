// ABOUTME: Knowledge manager: holds scraped content, refreshes it in the background
// ABOUTME: Serves token-overlap search over sections and degrades to fallback knowledge

package knowledge

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/campusbot-go/internal/log"
	"github.com/mauromedda/campusbot-go/internal/scrape"
	"github.com/mauromedda/campusbot-go/internal/telemetry"
)

// Refresh pacing. The institute site is flaky, so refreshes never run
// more often than MinInterval and a failed cycle retries sooner.
const (
	MinInterval  = 30 * time.Minute
	retryBackoff = 5 * time.Minute

	maxSearchResults = 2
	minSearchToken   = 4
)

// Refresh states reported by Status.
const (
	StatusIdle      = "idle"
	StatusUpdating  = "updating"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Manager owns the in-memory knowledge base.
type Manager struct {
	scraper  *scrape.Scraper
	cache    *Cache // may be nil
	metrics  *telemetry.Collector
	interval time.Duration

	mu         sync.RWMutex
	pages      map[string]string
	links      []scrape.Link
	status     string
	lastUpdate time.Time
}

// NewManager seeds the knowledge base from the cache when possible,
// falling back to the built-in content. Intervals below MinInterval
// are raised to it.
func NewManager(scraper *scrape.Scraper, cache *Cache, metrics *telemetry.Collector, interval time.Duration) *Manager {
	if interval < MinInterval {
		interval = MinInterval
	}
	m := &Manager{
		scraper:  scraper,
		cache:    cache,
		metrics:  metrics,
		interval: interval,
		status:   StatusIdle,
	}

	if cache != nil {
		if pages, err := cache.LoadPages(); err == nil && len(pages) > 0 {
			m.pages = pages
			metrics.RecordCache(true)
			log.Info("knowledge loaded from cache: %d sections", len(pages))
			return m
		} else if err != nil {
			log.Warn("loading knowledge cache: %v", err)
		}
	}
	m.pages = Fallback()
	metrics.RecordCache(false)
	return m
}

// Refresh scrapes the site once and merges the result. Existing
// sections survive a partial scrape; a total failure keeps whatever we
// already have.
func (m *Manager) Refresh(ctx context.Context) error {
	m.setStatus(StatusUpdating)

	pages, err := m.scraper.FetchAll(ctx)
	if err != nil {
		m.metrics.RecordScrape(false)
		m.setStatus(StatusFailed)
		log.Warn("knowledge refresh failed, keeping existing content: %v", err)
		return err
	}

	m.mu.Lock()
	var links []scrape.Link
	for name, page := range pages {
		m.pages[name] = page.Content
		links = append(links, page.Links...)
	}
	m.links = links
	m.lastUpdate = time.Now()
	snapshot := make(map[string]string, len(m.pages))
	for k, v := range m.pages {
		snapshot[k] = v
	}
	m.mu.Unlock()

	if m.cache != nil {
		if err := m.cache.StorePages(snapshot); err != nil {
			log.Warn("caching knowledge: %v", err)
		}
	}

	m.metrics.RecordScrape(true)
	m.setStatus(StatusCompleted)
	log.Info("knowledge refreshed: %d pages", len(pages))
	return nil
}

// StartBackground refreshes immediately and then on the configured
// interval until ctx is done. Failures retry on a shorter backoff.
func (m *Manager) StartBackground(ctx context.Context) {
	go func() {
		for {
			delay := m.interval
			if err := m.Refresh(ctx); err != nil {
				delay = retryBackoff
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}()
}

// Search returns the most relevant sections for a query, best first.
// Relevance is occurrence-count overlap of query tokens longer than
// three characters; ties break by section name so results are stable.
func (m *Manager) Search(query string) []string {
	words := strings.Fields(strings.ToLower(query))

	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		name    string
		content string
		score   int
	}
	var hits []hit
	for name, content := range m.pages {
		lower := strings.ToLower(content)
		score := 0
		for _, w := range words {
			if len(w) >= minSearchToken {
				score += strings.Count(lower, w)
			}
		}
		if score > 0 {
			hits = append(hits, hit{name: name, content: content, score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].name < hits[j].name
	})

	n := len(hits)
	if n > maxSearchResults {
		n = maxSearchResults
	}
	out := make([]string, 0, n)
	for _, h := range hits[:n] {
		out = append(out, h.content)
	}
	return out
}

// Links returns the application links found during the last refresh.
func (m *Manager) Links() []scrape.Link {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]scrape.Link(nil), m.links...)
}

// Sections returns how many knowledge sections are currently held.
func (m *Manager) Sections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pages)
}

// Status reports the refresh state and last successful update time.
func (m *Manager) Status() (string, time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status, m.lastUpdate
}

func (m *Manager) setStatus(s string) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}
