// ABOUTME: Composes the final reply, follow-up suggestions, and CTAs for a classified turn
// ABOUTME: Deterministic given identical inputs; all choices come from fixed tables

package respond

import (
	"strings"

	"github.com/mauromedda/campusbot-go/internal/convo"
	"github.com/mauromedda/campusbot-go/internal/intent"
	"github.com/mauromedda/campusbot-go/internal/nlp"
	"github.com/mauromedda/campusbot-go/pkg/api"
)

// detailedWordCount is the message length past which a reply goes
// detailed even without an explicit signal.
const detailedWordCount = 10

// contentPreviewLimit bounds how much scraped content is inlined.
const contentPreviewLimit = 500

// Result is everything the generator produces for one turn.
type Result struct {
	Reply       string
	Suggestions []string
	CTAs        []api.CTA
	Style       Style
}

// Generator composes replies from the fixed template tables.
type Generator struct{}

func New() *Generator { return &Generator{} }

// SelectStyle applies the style rules in order: urgency beats detail
// beats comparison beats standard. Sentiment is handled separately.
func SelectStyle(a nlp.Analysis) Style {
	switch {
	case a.Signals.Urgency:
		return StyleUrgent
	case a.Signals.WantsDetails || entityCount(a) >= 2 || a.WordCount > detailedWordCount:
		return StyleDetailed
	case a.Signals.Comparison:
		return StyleComparison
	default:
		return StyleStandard
	}
}

// Generate builds the reply for a decided intent. content holds
// relevant scraped passages, best match first; links holds application
// links harvested from the site. Both may be empty.
func (g *Generator) Generate(dec intent.Decision, a nlp.Analysis, sess *convo.Session, content []string, links []api.CTA) Result {
	style := SelectStyle(a)

	var b strings.Builder

	switch a.Sentiment {
	case nlp.SentimentPositive:
		b.WriteString(positiveOpener)
	case nlp.SentimentNegative:
		b.WriteString(negativeOpener)
	}

	if lead := styleLeads[dec.Intent][style]; lead != "" {
		b.WriteString(lead)
		b.WriteString("\n\n")
	}

	body, ok := bodies[dec.Intent]
	if !ok {
		body = bodies[intent.IntentGeneral]
	}
	b.WriteString(body)

	if lines := entityContent(a); lines != "" {
		b.WriteString("\n\n")
		b.WriteString(lines)
	}

	if len(content) > 0 && inlinesContent(dec.Intent) {
		b.WriteString("\n\n**From our website:**\n")
		b.WriteString(preview(content[0]))
	}

	ctas := selectCTAs(dec.Intent, a.Signals, links)
	b.WriteString("\n\n**Next Steps:**")
	for _, cta := range ctas {
		b.WriteString("\n- [")
		b.WriteString(cta.Text)
		b.WriteString("](")
		b.WriteString(cta.URL)
		b.WriteString(")")
	}

	switch a.Sentiment {
	case nlp.SentimentPositive:
		b.WriteString(positiveCloser)
	case nlp.SentimentNegative:
		b.WriteString(negativeCloser)
	}

	return Result{
		Reply:       b.String(),
		Suggestions: Suggestions(dec.Intent, sess, style),
		CTAs:        ctas,
		Style:       style,
	}
}

// entityContent renders a line per mentioned program entity, in the
// order they appeared in the message.
func entityContent(a nlp.Analysis) string {
	var lines []string
	for _, prog := range a.Entities[nlp.CategoryPrograms] {
		if line, ok := entityLines[prog]; ok {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// inlinesContent reports whether an intent's reply embeds scraped text.
// Template-complete intents don't need it.
func inlinesContent(label string) bool {
	switch label {
	case intent.IntentTactProgram, intent.IntentHistory, intent.IntentGeneral:
		return true
	}
	return false
}

func preview(content string) string {
	if len(content) > contentPreviewLimit {
		return content[:contentPreviewLimit] + "..."
	}
	return content
}

// selectCTAs picks the per-intent CTA set and adjusts it for signals:
// urgency prepends a hotline entry, comparison appends the comparison
// tool, and the list is capped. Application-flavored intents surface
// links harvested from the live site ahead of the static table, so a
// current enrollment form beats a stale hard-coded one.
func selectCTAs(label string, sig nlp.Signals, harvested []api.CTA) []api.CTA {
	base, ok := ctaTable[label]
	if !ok {
		base = defaultCTAs
	}

	ctas := make([]api.CTA, 0, len(base)+len(harvested)+2)
	if sig.Urgency {
		ctas = append(ctas, urgentCTA)
	}
	if wantsHarvestedLinks(label) {
		ctas = appendUniqueCTAs(ctas, harvested)
	}
	ctas = appendUniqueCTAs(ctas, base)
	if sig.Comparison {
		ctas = appendUniqueCTAs(ctas, []api.CTA{comparisonCTA})
	}
	if len(ctas) > maxCTAs {
		ctas = ctas[:maxCTAs]
	}
	return ctas
}

func wantsHarvestedLinks(label string) bool {
	return label == intent.IntentApplication || label == intent.IntentTactProgram
}

// appendUniqueCTAs appends entries whose URL is not already present.
func appendUniqueCTAs(ctas []api.CTA, more []api.CTA) []api.CTA {
	for _, c := range more {
		seen := false
		for _, have := range ctas {
			if have.URL == c.URL {
				seen = true
				break
			}
		}
		if !seen {
			ctas = append(ctas, c)
		}
	}
	return ctas
}

func entityCount(a nlp.Analysis) int {
	n := 0
	for _, terms := range a.Entities {
		n += len(terms)
	}
	return n
}
