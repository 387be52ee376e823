// ABOUTME: Tests for settings precedence: defaults, file overlay, env overrides
// ABOUTME: Also checks derived paths and durations

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Addr != ":8080" || s.MaxMessageLength != 500 || s.RateLimitRequests != 10 {
		t.Errorf("defaults = %+v", s)
	}
	if s.SessionTTL() != 30*time.Minute {
		t.Errorf("SessionTTL = %v; want 30m", s.SessionTTL())
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"addr": ":9999", "session_ttl_minutes": 45}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Addr != ":9999" {
		t.Errorf("Addr = %q; want file value", s.Addr)
	}
	if s.SessionTTL() != 45*time.Minute {
		t.Errorf("SessionTTL = %v; want 45m", s.SessionTTL())
	}
	// Untouched fields keep defaults.
	if s.MaxMessageLength != 500 {
		t.Errorf("MaxMessageLength = %d; want default", s.MaxMessageLength)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load accepted malformed JSON")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"addr": ":9999"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CAMPUSBOT_ADDR", ":7777")
	t.Setenv("CAMPUSBOT_DATA_DIR", "/tmp/campusbot-test")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Addr != ":7777" {
		t.Errorf("Addr = %q; want env value", s.Addr)
	}
	if got := s.WeightsFile(); got != filepath.Join("/tmp/campusbot-test", "intent_weights.json") {
		t.Errorf("WeightsFile = %q", got)
	}
	if got := s.CacheFile(); got != filepath.Join("/tmp/campusbot-test", "knowledge.db") {
		t.Errorf("CacheFile = %q", got)
	}
}
