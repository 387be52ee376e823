// ABOUTME: Hardened HTTP client and server constructors shared by the scraper and the API
// ABOUTME: Timeouts bound every phase so one slow peer cannot pin a connection

package http

import (
	"errors"
	"net/http"
	"time"
)

// maxRedirects bounds redirect chains when fetching site pages.
const maxRedirects = 3

// ScrapeClient builds the client the site scraper uses. The scrape
// targets a single host with a handful of concurrent fetchers, so the
// idle pool matches that fan-out and connections are recycled quickly
// between refresh cycles.
func ScrapeClient(timeout time.Duration, concurrency int) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			IdleConnTimeout:       15 * time.Second,
			MaxIdleConns:          concurrency,
			MaxIdleConnsPerHost:   concurrency,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.New("too many redirects")
			}
			return nil
		},
	}
}

// APIServer builds the public chat API server. Requests are small JSON
// bodies, so read and write windows are tight and header budgets stay
// well under the stdlib default.
func APIServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}
}
