// ABOUTME: Scores messages against concept clusters and folds the result into confidence
// ABOUTME: Match sets are synonym-expanded once at construction and read-only afterwards

package semantic

import (
	"sort"

	"github.com/mauromedda/campusbot-go/internal/nlp"
)

// Default boost tuning. The cap and factor are configuration, not
// learned values.
const (
	DefaultBoostCap    = 0.3
	DefaultBoostFactor = 0.5
)

// ConceptScore is one concept's normalized match score for a message.
type ConceptScore struct {
	Label string
	Score float64
}

// Matcher scores analyses against the fixed concept clusters.
type Matcher struct {
	// expanded[label] holds the cluster's members plus every registered
	// synonym of a member.
	expanded map[string]map[string]struct{}
	// size[label] is the canonical member count used as the normalizer.
	size map[string]int

	BoostCap    float64
	BoostFactor float64
}

// NewMatcher builds a matcher over the built-in clusters and synonyms.
func NewMatcher() *Matcher {
	m := &Matcher{
		expanded:    make(map[string]map[string]struct{}, len(clusters)),
		size:        make(map[string]int, len(clusters)),
		BoostCap:    DefaultBoostCap,
		BoostFactor: DefaultBoostFactor,
	}
	for label, members := range clusters {
		set := make(map[string]struct{})
		for _, term := range members {
			set[term] = struct{}{}
			for _, syn := range synonyms[term] {
				set[syn] = struct{}{}
			}
		}
		m.expanded[label] = set
		m.size[label] = len(members)
	}
	return m
}

// ScoreConcepts scores every cluster against the analysis. The score is
// the count of distinct matching terms from the message's keywords,
// entities, and raw tokens, divided by the cluster's member count.
// Results are ordered by score descending, ties by label, so the output
// is deterministic for a fixed message.
func (m *Matcher) ScoreConcepts(a nlp.Analysis) []ConceptScore {
	terms := make(map[string]struct{}, len(a.Tokens)+len(a.Keywords))
	for _, t := range a.Tokens {
		terms[t] = struct{}{}
	}
	for _, k := range a.Keywords {
		terms[k] = struct{}{}
	}
	for _, ents := range a.Entities {
		for _, e := range ents {
			terms[e] = struct{}{}
		}
	}

	scores := make([]ConceptScore, 0, len(m.expanded))
	for label, set := range m.expanded {
		matches := 0
		for term := range terms {
			if _, ok := set[term]; ok {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		scores = append(scores, ConceptScore{
			Label: label,
			Score: float64(matches) / float64(m.size[label]),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Label < scores[j].Label
	})
	return scores
}

// Boost folds the top concept score into a base confidence. The added
// amount is top*factor, capped, and the result is clamped to [0,1].
func (m *Matcher) Boost(base float64, concepts []ConceptScore) float64 {
	if len(concepts) == 0 {
		return clamp01(base)
	}
	add := concepts[0].Score * m.BoostFactor
	if add > m.BoostCap {
		add = m.BoostCap
	}
	return clamp01(base + add)
}

// Score returns one concept's score from a ranked list, or zero if the
// concept did not match.
func Score(concepts []ConceptScore, label string) float64 {
	for _, c := range concepts {
		if c.Label == label {
			return c.Score
		}
	}
	return 0
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
