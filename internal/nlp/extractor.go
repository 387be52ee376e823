// ABOUTME: Lexical feature extraction: entities, keywords, question type, intent signals, sentiment
// ABOUTME: Pure per-call; reads an immutable Lexicon snapshot, swap-able for hot reload

package nlp

import (
	"sort"
	"strings"
	"sync/atomic"
	"unicode"

	"golang.org/x/text/cases"
)

// QuestionType is the interrogative category of a message.
type QuestionType string

const (
	QuestionWhat  QuestionType = "what"
	QuestionHow   QuestionType = "how"
	QuestionWhen  QuestionType = "when"
	QuestionWhere QuestionType = "where"
	QuestionWhy   QuestionType = "why"
	QuestionCanDo QuestionType = "can_do"
	QuestionNone  QuestionType = "none"
)

// Sentiment is the lexicon-derived tone of a message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Signals are four independent boolean cues; none excludes another.
type Signals struct {
	Urgency       bool
	Comparison    bool
	SeekingAdvice bool
	WantsDetails  bool
}

// Analysis is the structured result of extracting features from one message.
// It is immutable once produced.
type Analysis struct {
	Entities     map[string][]string // category -> matched terms, first-occurrence order
	Keywords     []string            // at most maxKeywords, frequency-ranked
	QuestionType QuestionType
	Signals      Signals
	Sentiment    Sentiment
	Tokens       []string // normalized tokens, reused by the classifier
	WordCount    int
	HasQuestion  bool
}

const maxKeywords = 5

// questionMarkers are tested in declared order; the first category with a
// marker present wins, which resolves multi-marker messages deterministically.
var questionMarkers = []struct {
	qt      QuestionType
	markers []string
}{
	{QuestionWhat, []string{"what"}},
	{QuestionHow, []string{"how"}},
	{QuestionWhen, []string{"when"}},
	{QuestionWhere, []string{"where"}},
	{QuestionWhy, []string{"why"}},
	{QuestionCanDo, []string{"can", "do"}},
}

var foldCaser = cases.Fold()

// Extractor turns raw message text into an Analysis.
type Extractor struct {
	lex atomic.Pointer[Lexicon]
}

// NewExtractor creates an extractor over the given lexicon.
func NewExtractor(lex *Lexicon) *Extractor {
	e := &Extractor{}
	e.lex.Store(lex)
	return e
}

// SetLexicon swaps the lexicon. In-flight extractions keep the snapshot
// they started with.
func (e *Extractor) SetLexicon(lex *Lexicon) { e.lex.Store(lex) }

// Normalize folds case and replaces punctuation with spaces.
func Normalize(text string) string {
	folded := foldCaser.String(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, folded)
}

// Tokenize returns the whitespace-split tokens of the normalized text.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// Extract analyzes one message. Any input, including empty, yields a
// well-formed result.
func (e *Extractor) Extract(text string) Analysis {
	lex := e.lex.Load()
	normalized := Normalize(text)
	tokens := strings.Fields(normalized)

	return Analysis{
		Entities:     extractEntities(normalized, lex),
		Keywords:     extractKeywords(tokens, lex),
		QuestionType: detectQuestionType(tokens),
		Signals:      extractSignals(tokens, lex),
		Sentiment:    scoreSentiment(tokens, lex),
		Tokens:       tokens,
		WordCount:    len(tokens),
		HasQuestion:  strings.Contains(text, "?"),
	}
}

// extractEntities matches each category's vocabulary against the normalized
// text. Matches are de-duplicated and ordered by first occurrence.
func extractEntities(normalized string, lex *Lexicon) map[string][]string {
	found := make(map[string][]string)
	for category, terms := range lex.Entities {
		type hit struct {
			term string
			pos  int
		}
		var hits []hit
		for _, term := range terms {
			if pos := strings.Index(normalized, term); pos >= 0 {
				hits = append(hits, hit{term: term, pos: pos})
			}
		}
		if len(hits) == 0 {
			continue
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
		matched := make([]string, len(hits))
		for i, h := range hits {
			matched[i] = h.term
		}
		found[category] = matched
	}
	return found
}

// extractKeywords ranks non-stop-word tokens by frequency, ties broken by
// earliest position, and returns the top five.
func extractKeywords(tokens []string, lex *Lexicon) []string {
	type candidate struct {
		word  string
		count int
		first int
	}
	byWord := make(map[string]*candidate)
	var order []*candidate

	for i, tok := range tokens {
		if len(tok) < 3 || !isAlpha(tok) {
			continue
		}
		if _, stop := lex.StopWords[tok]; stop {
			continue
		}
		if c, ok := byWord[tok]; ok {
			c.count++
			continue
		}
		c := &candidate{word: tok, count: 1, first: i}
		byWord[tok] = c
		order = append(order, c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	n := len(order)
	if n > maxKeywords {
		n = maxKeywords
	}
	keywords := make([]string, 0, n)
	for _, c := range order[:n] {
		keywords = append(keywords, c.word)
	}
	return keywords
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// detectQuestionType scans marker categories in priority order.
func detectQuestionType(tokens []string) QuestionType {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	for _, qm := range questionMarkers {
		for _, m := range qm.markers {
			if _, ok := set[m]; ok {
				return qm.qt
			}
		}
	}
	return QuestionNone
}

func extractSignals(tokens []string, lex *Lexicon) Signals {
	return Signals{
		Urgency:       containsAny(tokens, lex.Urgency),
		Comparison:    containsAny(tokens, lex.Compare),
		SeekingAdvice: containsAny(tokens, lex.Advice),
		WantsDetails:  containsAny(tokens, lex.Details),
	}
}

// containsAny prefix-matches so inflected forms count: "urgently"
// trips "urgent".
func containsAny(tokens []string, words []string) bool {
	for _, tok := range tokens {
		for _, w := range words {
			if strings.HasPrefix(tok, w) {
				return true
			}
		}
	}
	return false
}

// scoreSentiment counts positive and negative lexicon hits.
func scoreSentiment(tokens []string, lex *Lexicon) Sentiment {
	score := 0
	for _, tok := range tokens {
		for _, w := range lex.Positive {
			if tok == w {
				score++
			}
		}
		for _, w := range lex.Negative {
			if tok == w {
				score--
			}
		}
	}
	switch {
	case score > 0:
		return SentimentPositive
	case score < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
