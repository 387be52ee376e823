// ABOUTME: Follow-up suggestion selection: personalized from session flags, then static pools
// ABOUTME: Already-shown suggestions are filtered out within a session

package respond

import (
	"github.com/mauromedda/campusbot-go/internal/convo"
)

// Suggestions assembles follow-ups for a turn. Personalized entries
// from session context come first (most relevant to what the user has
// already explored), then the intent's static pool. Anything shown
// earlier in the session is skipped, and at most maxSuggestions are
// returned. A detailed-style turn keeps the list short since the reply
// itself already goes deep.
func Suggestions(intentLabel string, sess *convo.Session, style Style) []string {
	limit := maxSuggestions
	if style == StyleDetailed {
		limit = 2
	}

	var pool []string
	if sess != nil {
		f := sess.Flags()
		if f.InterestedInTact {
			pool = append(pool, suggestTactRequirements)
		}
		if f.ConsideringApplication {
			pool = append(pool, suggestApplicationSteps)
		}
		if len(f.ExploredPrograms) > 1 {
			pool = append(pool, suggestComparePrograms)
		}
	}
	pool = append(pool, followUps[intentLabel]...)

	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(pool))
	for _, s := range pool {
		if len(out) == limit {
			break
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if sess != nil && sess.Seen(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
