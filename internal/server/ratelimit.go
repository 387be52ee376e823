// ABOUTME: Sliding-window per-client rate limiter for the chat endpoint
// ABOUTME: Keeps request timestamps per IP; old entries age out on each check

package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// purgeEvery is how many Allow calls pass between sweeps of clients
// whose window has fully aged out. Without the sweep, rotating IPs
// would grow the map without bound.
const purgeEvery = 256

// RateLimiter allows maxRequests per window per client.
type RateLimiter struct {
	maxRequests int
	window      time.Duration

	mu         sync.Mutex
	clients    map[string][]time.Time
	sinceSweep int
	now        func() time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		clients:     make(map[string][]time.Time),
		now:         time.Now,
	}
}

// Allow records a request for the client and reports whether it is
// within the limit.
func (rl *RateLimiter) Allow(client string) bool {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sinceSweep++
	if rl.sinceSweep >= purgeEvery {
		rl.sinceSweep = 0
		rl.sweep(cutoff)
	}

	recent := rl.clients[client][:0]
	for _, ts := range rl.clients[client] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	if len(recent) >= rl.maxRequests {
		rl.clients[client] = recent
		return false
	}
	rl.clients[client] = append(recent, now)
	return true
}

// sweep drops clients with no timestamp inside the window. Called with
// the lock held.
func (rl *RateLimiter) sweep(cutoff time.Time) {
	for client, stamps := range rl.clients {
		stale := true
		for _, ts := range stamps {
			if ts.After(cutoff) {
				stale = false
				break
			}
		}
		if stale {
			delete(rl.clients, client)
		}
	}
}

// clientIP extracts the caller address, honoring the first
// X-Forwarded-For hop when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
