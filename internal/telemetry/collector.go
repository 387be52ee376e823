// ABOUTME: In-process counters for requests, classification, scraping, and caching
// ABOUTME: Read-only snapshots feed the metrics endpoint; writers never block each other long

package telemetry

import (
	"sync"
	"time"

	"github.com/mauromedda/campusbot-go/pkg/api"
)

// Collector accumulates service counters. The zero value is not usable;
// construct with NewCollector so uptime starts at boot.
type Collector struct {
	start time.Time

	mu              sync.Mutex
	requests        int64
	errors          int64
	classifications int64
	fallbacks       int64
	confidenceSum   float64
	scrapeSuccess   int64
	scrapeFailure   int64
	cacheHits       int64
	cacheMisses     int64
}

func NewCollector() *Collector {
	return &Collector{start: time.Now()}
}

// RecordRequest counts one handled chat request.
func (c *Collector) RecordRequest() {
	c.mu.Lock()
	c.requests++
	c.mu.Unlock()
}

// RecordError counts one failed request.
func (c *Collector) RecordError() {
	c.mu.Lock()
	c.errors++
	c.mu.Unlock()
}

// RecordClassification tracks a decision's confidence and whether the
// rule fallback produced it.
func (c *Collector) RecordClassification(confidence float64, usedFallback bool) {
	c.mu.Lock()
	c.classifications++
	c.confidenceSum += confidence
	if usedFallback {
		c.fallbacks++
	}
	c.mu.Unlock()
}

// RecordScrape counts one scrape cycle outcome.
func (c *Collector) RecordScrape(ok bool) {
	c.mu.Lock()
	if ok {
		c.scrapeSuccess++
	} else {
		c.scrapeFailure++
	}
	c.mu.Unlock()
}

// RecordCache counts one cache lookup outcome.
func (c *Collector) RecordCache(hit bool) {
	c.mu.Lock()
	if hit {
		c.cacheHits++
	} else {
		c.cacheMisses++
	}
	c.mu.Unlock()
}

// Snapshot returns current counter values. activeSessions comes from
// the session store since the collector does not own it.
func (c *Collector) Snapshot(activeSessions int) api.MetricsResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	avg := 0.0
	if c.classifications > 0 {
		avg = c.confidenceSum / float64(c.classifications)
	}
	return api.MetricsResponse{
		UptimeSeconds:   time.Since(c.start).Seconds(),
		TotalRequests:   uint64(c.requests),
		TotalErrors:     uint64(c.errors),
		Classifications: uint64(c.classifications),
		Fallbacks:       uint64(c.fallbacks),
		AvgConfidence:   avg,
		ActiveSessions:  activeSessions,
		ScrapeSuccess:   uint64(c.scrapeSuccess),
		ScrapeFailure:   uint64(c.scrapeFailure),
		CacheHits:       uint64(c.cacheHits),
		CacheMisses:     uint64(c.cacheMisses),
	}
}
