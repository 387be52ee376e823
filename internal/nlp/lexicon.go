// ABOUTME: Default vocabularies for the feature extractor: entities, stop words, signals, sentiment
// ABOUTME: An optional YAML file can override or extend any table at startup

package nlp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon holds every fixed vocabulary the extractor consults.
// A Lexicon is immutable after construction; hot reload swaps the
// whole value rather than mutating it in place.
type Lexicon struct {
	StopWords map[string]struct{}
	Entities  map[string][]string // category -> canonical terms
	Urgency   []string
	Compare   []string
	Advice    []string
	Details   []string
	Positive  []string
	Negative  []string
}

// Entity categories.
const (
	CategoryPrograms    = "programs"
	CategoryLocations   = "locations"
	CategoryTimePeriods = "time_periods"
)

var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "can", "i", "you", "he", "she", "it", "we",
	"they", "this", "that", "these", "those", "about", "what", "how",
	"when", "where", "why",
}

var defaultEntities = map[string][]string{
	CategoryPrograms:    {"tact", "mechanical", "electrical", "welding", "instrumentation", "engineering"},
	CategoryLocations:   {"ghana", "accra", "kumasi", "campus"},
	CategoryTimePeriods: {"semester", "year", "month", "week", "morning", "evening"},
}

var (
	defaultUrgency = []string{"urgent", "asap", "immediately", "now", "quickly", "soon"}
	defaultCompare = []string{"compare", "difference", "better", "best", "versus", "vs"}
	defaultAdvice  = []string{"decide", "choose", "select", "pick", "recommend", "suggest"}
	defaultDetails = []string{"detail", "details", "more", "explain", "elaborate", "specific", "exactly"}

	defaultPositive = []string{"good", "great", "excellent", "amazing", "wonderful", "love", "like", "happy", "excited", "thanks"}
	defaultNegative = []string{"bad", "terrible", "awful", "hate", "dislike", "disappointed", "frustrated", "angry"}
)

// DefaultLexicon returns the built-in vocabularies.
func DefaultLexicon() *Lexicon {
	lex := &Lexicon{
		StopWords: make(map[string]struct{}, len(defaultStopWords)),
		Entities:  make(map[string][]string, len(defaultEntities)),
		Urgency:   defaultUrgency,
		Compare:   defaultCompare,
		Advice:    defaultAdvice,
		Details:   defaultDetails,
		Positive:  defaultPositive,
		Negative:  defaultNegative,
	}
	for _, w := range defaultStopWords {
		lex.StopWords[w] = struct{}{}
	}
	for cat, terms := range defaultEntities {
		lex.Entities[cat] = append([]string(nil), terms...)
	}
	return lex
}

// lexiconFile is the YAML shape of a lexicon override file.
// Every field is optional; present fields replace the default table.
type lexiconFile struct {
	StopWords []string            `yaml:"stop_words"`
	Entities  map[string][]string `yaml:"entities"`
	Urgency   []string            `yaml:"urgency"`
	Compare   []string            `yaml:"comparison"`
	Advice    []string            `yaml:"advice"`
	Details   []string            `yaml:"details"`
	Positive  []string            `yaml:"positive"`
	Negative  []string            `yaml:"negative"`
}

// LoadLexicon builds a Lexicon from the defaults overlaid with the YAML
// file at path. A missing file is not an error; a malformed one is.
func LoadLexicon(path string) (*Lexicon, error) {
	lex := DefaultLexicon()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lex, nil
		}
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}

	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(f.StopWords) > 0 {
		lex.StopWords = make(map[string]struct{}, len(f.StopWords))
		for _, w := range f.StopWords {
			lex.StopWords[w] = struct{}{}
		}
	}
	for cat, terms := range f.Entities {
		lex.Entities[cat] = append([]string(nil), terms...)
	}
	if len(f.Urgency) > 0 {
		lex.Urgency = f.Urgency
	}
	if len(f.Compare) > 0 {
		lex.Compare = f.Compare
	}
	if len(f.Advice) > 0 {
		lex.Advice = f.Advice
	}
	if len(f.Details) > 0 {
		lex.Details = f.Details
	}
	if len(f.Positive) > 0 {
		lex.Positive = f.Positive
	}
	if len(f.Negative) > 0 {
		lex.Negative = f.Negative
	}
	return lex, nil
}
