// ABOUTME: Settings loading with defaults, JSON file overlay, and environment overrides
// ABOUTME: JSON-based configuration using encoding/json; env wins over file wins over defaults

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Settings holds the merged service configuration.
type Settings struct {
	Addr        string `json:"addr,omitempty"`
	BaseURL     string `json:"base_url,omitempty"`
	DataDir     string `json:"data_dir,omitempty"`
	LexiconPath string `json:"lexicon_path,omitempty"`

	ScrapeIntervalMinutes int `json:"scrape_interval_minutes,omitempty"`
	SessionTTLMinutes     int `json:"session_ttl_minutes,omitempty"`
	AutosaveMinutes       int `json:"autosave_minutes,omitempty"`

	RateLimitRequests      int `json:"rate_limit_requests,omitempty"`
	RateLimitWindowSeconds int `json:"rate_limit_window_seconds,omitempty"`
	MaxMessageLength       int `json:"max_message_length,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Settings {
	return &Settings{
		Addr:                   ":8080",
		BaseURL:                "https://www.mptigh.com",
		DataDir:                defaultDataDir(),
		ScrapeIntervalMinutes:  60,
		SessionTTLMinutes:      30,
		AutosaveMinutes:        5,
		RateLimitRequests:      10,
		RateLimitWindowSeconds: 60,
		MaxMessageLength:       500,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".campusbot"
	}
	return filepath.Join(home, ".campusbot")
}

// Load builds Settings from defaults, overlaid with the JSON file at
// path (missing file is fine), then environment variables.
func Load(path string) (*Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// keep defaults
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			var file Settings
			if err := json.Unmarshal(data, &file); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			overlay(s, &file)
		}
	}

	applyEnv(s)
	return s, nil
}

// overlay copies non-zero values from src onto dst.
func overlay(dst, src *Settings) {
	if src.Addr != "" {
		dst.Addr = src.Addr
	}
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.DataDir != "" {
		dst.DataDir = src.DataDir
	}
	if src.LexiconPath != "" {
		dst.LexiconPath = src.LexiconPath
	}
	if src.ScrapeIntervalMinutes != 0 {
		dst.ScrapeIntervalMinutes = src.ScrapeIntervalMinutes
	}
	if src.SessionTTLMinutes != 0 {
		dst.SessionTTLMinutes = src.SessionTTLMinutes
	}
	if src.AutosaveMinutes != 0 {
		dst.AutosaveMinutes = src.AutosaveMinutes
	}
	if src.RateLimitRequests != 0 {
		dst.RateLimitRequests = src.RateLimitRequests
	}
	if src.RateLimitWindowSeconds != 0 {
		dst.RateLimitWindowSeconds = src.RateLimitWindowSeconds
	}
	if src.MaxMessageLength != 0 {
		dst.MaxMessageLength = src.MaxMessageLength
	}
}

func applyEnv(s *Settings) {
	if v := os.Getenv("CAMPUSBOT_ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("CAMPUSBOT_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("CAMPUSBOT_DATA_DIR"); v != "" {
		s.DataDir = v
	}
	if v := os.Getenv("CAMPUSBOT_LEXICON"); v != "" {
		s.LexiconPath = v
	}
	if v := os.Getenv("CAMPUSBOT_SCRAPE_INTERVAL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.ScrapeIntervalMinutes = n
		}
	}
}

// Derived paths and durations.

// WeightsFile is where learned intent weights persist.
func (s *Settings) WeightsFile() string {
	return filepath.Join(s.DataDir, "intent_weights.json")
}

// CacheFile is the scraped-knowledge cache database.
func (s *Settings) CacheFile() string {
	return filepath.Join(s.DataDir, "knowledge.db")
}

func (s *Settings) ScrapeInterval() time.Duration {
	return time.Duration(s.ScrapeIntervalMinutes) * time.Minute
}

func (s *Settings) SessionTTL() time.Duration {
	return time.Duration(s.SessionTTLMinutes) * time.Minute
}

func (s *Settings) AutosaveInterval() time.Duration {
	return time.Duration(s.AutosaveMinutes) * time.Minute
}

func (s *Settings) RateLimitWindow() time.Duration {
	return time.Duration(s.RateLimitWindowSeconds) * time.Second
}
