// ABOUTME: Adaptive weighted intent classifier with context and semantic boosts
// ABOUTME: Falls back to the rule matcher when normalized confidence drops below the threshold

package intent

import (
	"strings"

	"github.com/mauromedda/campusbot-go/internal/nlp"
	"github.com/mauromedda/campusbot-go/internal/semantic"
)

// Classification tuning. Boost constants are carried over from the
// tuned deployment values and exposed as configuration rather than
// re-derived.
const (
	DefaultThreshold         = 0.3
	DefaultContextBoost      = 0.5
	DefaultSemanticBoost     = 0.3
	DefaultSemanticThreshold = 0.1
	DefaultExactBonus        = 2.0

	// normK shapes score/(score+normK): a single base-weight match
	// yields confidence well above the fallback threshold.
	normK = 0.5

	// contextWindow is how many recent intents feed the context boost.
	contextWindow = 2
)

// Request bundles everything a classifier may consult for one message.
type Request struct {
	Text     string
	Analysis nlp.Analysis
	Recent   []string // most recent intent last
	Concepts []semantic.ConceptScore
}

// Decision is the outcome of classifying one message.
type Decision struct {
	Intent       string
	Confidence   float64
	UsedFallback bool
	Matched      []string // vocabulary tokens that contributed to the winner
}

// Classifier is the capability shared by the weighted classifier and
// the rule fallback.
type Classifier interface {
	Classify(req Request) Decision
}

// Weighted scores intents from the mutable weight table, applies
// context and semantic boosts, and reinforces the winner. Below
// Threshold it defers to its fallback.
type Weighted struct {
	table    *Table
	fallback Classifier

	Threshold         float64
	ContextBoost      float64
	SemanticBoost     float64
	SemanticThreshold float64
	ExactBonus        float64
}

// NewWeighted builds the primary classifier over the given table with
// RuleMatcher as the backstop.
func NewWeighted(table *Table) *Weighted {
	return &Weighted{
		table:             table,
		fallback:          RuleMatcher{},
		Threshold:         DefaultThreshold,
		ContextBoost:      DefaultContextBoost,
		SemanticBoost:     DefaultSemanticBoost,
		SemanticThreshold: DefaultSemanticThreshold,
		ExactBonus:        DefaultExactBonus,
	}
}

// Classify scores every intent and returns the best decision. The mode
// switch is recomputed per call: a confident weighted result wins and
// is reinforced; anything below Threshold is discarded in favor of the
// rule matcher.
func (c *Weighted) Classify(req Request) Decision {
	normalized := strings.Join(req.Analysis.Tokens, " ")
	recent := lastN(req.Recent, contextWindow)

	var (
		bestLabel   string
		bestConf    float64
		bestMatched []string
	)

	// Priority order doubles as the tie-break: a later intent must
	// strictly beat the incumbent.
	for _, label := range priority {
		var score float64
		var matched []string

		for _, p := range compiled[label] {
			if !p.re.MatchString(req.Text) {
				continue
			}
			score += c.table.Get(label, p.token)
			matched = append(matched, p.token)
			if p.token == normalized {
				score += c.ExactBonus
			}
		}

		for _, r := range recent {
			if relatedTo(r, label) {
				score += c.ContextBoost
			}
		}

		for _, cluster := range concepts[label] {
			if semantic.Score(req.Concepts, cluster) > c.SemanticThreshold {
				score += c.SemanticBoost
				break
			}
		}

		if conf := confidence(score); conf > bestConf {
			bestLabel, bestConf, bestMatched = label, conf, matched
		}
	}

	if bestConf < c.Threshold {
		return c.fallback.Classify(req)
	}

	c.table.Reinforce(bestLabel, bestMatched)
	return Decision{
		Intent:     bestLabel,
		Confidence: bestConf,
		Matched:    bestMatched,
	}
}

// confidence squashes a non-negative raw score into [0,1). It is
// strictly increasing, so raising any matched weight raises the
// intent's confidence and never reorders other intents.
func confidence(score float64) float64 {
	if score <= 0 {
		return 0
	}
	return score / (score + normK)
}

func relatedTo(recent, candidate string) bool {
	for _, r := range related[recent] {
		if r == candidate {
			return true
		}
	}
	return false
}

func lastN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
