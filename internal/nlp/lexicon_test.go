// ABOUTME: Tests for lexicon loading: defaults, YAML overlay, missing and malformed files
// ABOUTME: Verifies overrides replace whole tables and untouched tables keep defaults

package nlp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLexicon(t *testing.T) {
	t.Parallel()

	lex := DefaultLexicon()

	if _, ok := lex.StopWords["the"]; !ok {
		t.Errorf("StopWords missing \"the\"")
	}
	for _, cat := range []string{CategoryPrograms, CategoryLocations, CategoryTimePeriods} {
		if len(lex.Entities[cat]) == 0 {
			t.Errorf("Entities[%q] is empty", cat)
		}
	}
	if len(lex.Urgency) == 0 || len(lex.Positive) == 0 {
		t.Errorf("signal vocabularies empty: urgency=%d positive=%d", len(lex.Urgency), len(lex.Positive))
	}
}

func TestLoadLexicon_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	lex, err := LoadLexicon(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if len(lex.Entities[CategoryPrograms]) != len(DefaultLexicon().Entities[CategoryPrograms]) {
		t.Errorf("missing file changed default entities")
	}
}

func TestLoadLexicon_EmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	lex, err := LoadLexicon("")
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if _, ok := lex.StopWords["and"]; !ok {
		t.Errorf("defaults not applied for empty path")
	}
}

func TestLoadLexicon_OverlayReplacesTables(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `
entities:
  programs:
    - robotics
    - plumbing
urgency:
  - pronto
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}

	if got := lex.Entities[CategoryPrograms]; len(got) != 2 || got[0] != "robotics" {
		t.Errorf("Entities[programs] = %v; want [robotics plumbing]", got)
	}
	if len(lex.Urgency) != 1 || lex.Urgency[0] != "pronto" {
		t.Errorf("Urgency = %v; want [pronto]", lex.Urgency)
	}
	// Tables absent from the file keep their defaults.
	if len(lex.Entities[CategoryLocations]) == 0 {
		t.Errorf("locations lost during overlay")
	}
	if _, ok := lex.StopWords["the"]; !ok {
		t.Errorf("stop words lost during overlay")
	}
}

func TestLoadLexicon_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("entities: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLexicon(path); err == nil {
		t.Errorf("LoadLexicon accepted malformed YAML")
	}
}
