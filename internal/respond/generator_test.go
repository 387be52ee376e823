// ABOUTME: Tests for style selection, reply composition, CTA adjustment, and suggestions
// ABOUTME: Includes the greeting and urgent-TACT conversation scenarios end to end

package respond

import (
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/campusbot-go/internal/convo"
	"github.com/mauromedda/campusbot-go/internal/intent"
	"github.com/mauromedda/campusbot-go/internal/nlp"
	"github.com/mauromedda/campusbot-go/pkg/api"
)

var testExtractor = nlp.NewExtractor(nlp.DefaultLexicon())

func TestSelectStyle_RuleOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		msg  string
		want Style
	}{
		{"I urgently need information", StyleUrgent},
		// Urgency outranks every other signal.
		{"compare the programs in detail immediately", StyleUrgent},
		{"explain the fees in detail", StyleDetailed},
		{"what is the difference between welding and mechanical", StyleDetailed},
		{"which program is better", StyleComparison},
		{"hello", StyleStandard},
	}

	for _, tt := range tests {
		if got := SelectStyle(testExtractor.Extract(tt.msg)); got != tt.want {
			t.Errorf("SelectStyle(%q) = %q; want %q", tt.msg, got, tt.want)
		}
	}
}

func TestGenerate_GreetingScenario(t *testing.T) {
	t.Parallel()

	st := convo.NewStore(0)
	sess, _ := st.GetOrCreate("")

	dec := intent.Decision{Intent: intent.IntentGreeting, Confidence: 0.85}
	res := New().Generate(dec, testExtractor.Extract("Hello"), sess, nil, nil)

	if !strings.Contains(res.Reply, "Welcome to MPTI") {
		t.Errorf("greeting reply missing welcome: %q", res.Reply)
	}
	if len(res.Suggestions) != 0 {
		t.Errorf("greeting suggestions = %v; want none", res.Suggestions)
	}
	if res.Style != StyleStandard {
		t.Errorf("Style = %q; want standard", res.Style)
	}
}

func TestGenerate_UrgentTactScenario(t *testing.T) {
	t.Parallel()

	a := testExtractor.Extract("I urgently need information about TACT program")
	if !a.Signals.Urgency {
		t.Fatalf("urgency signal not detected")
	}
	progs := a.Entities[nlp.CategoryPrograms]
	if len(progs) == 0 || progs[0] != "tact" {
		t.Fatalf("Entities[programs] = %v; want tact first", progs)
	}

	st := convo.NewStore(0)
	sess, _ := st.GetOrCreate("")
	dec := intent.Decision{Intent: intent.IntentTactProgram, Confidence: 0.8}
	res := New().Generate(dec, a, sess, nil, nil)

	if res.Style != StyleUrgent {
		t.Errorf("Style = %q; want urgent", res.Style)
	}
	if res.CTAs[0] != urgentCTA {
		t.Errorf("CTAs[0] = %v; want the urgent entry first", res.CTAs[0])
	}
	if !strings.Contains(res.Reply, "TACT Program") {
		t.Errorf("reply does not mention TACT: %q", res.Reply)
	}
}

func TestGenerate_SentimentWrapping(t *testing.T) {
	t.Parallel()

	dec := intent.Decision{Intent: intent.IntentFees, Confidence: 0.7}

	pos := New().Generate(dec, testExtractor.Extract("great, what are the fees"), nil, nil, nil)
	if !strings.HasPrefix(pos.Reply, positiveOpener) || !strings.HasSuffix(pos.Reply, positiveCloser) {
		t.Errorf("positive reply not wrapped: %q", pos.Reply)
	}

	neg := New().Generate(dec, testExtractor.Extract("I am frustrated about the fees"), nil, nil, nil)
	if !strings.HasPrefix(neg.Reply, negativeOpener) {
		t.Errorf("negative reply not wrapped: %q", neg.Reply)
	}

	neutral := New().Generate(dec, testExtractor.Extract("what are the fees"), nil, nil, nil)
	if strings.HasPrefix(neutral.Reply, positiveOpener) || strings.HasPrefix(neutral.Reply, negativeOpener) {
		t.Errorf("neutral reply got a tone wrapper: %q", neutral.Reply)
	}
}

func TestGenerate_ContentInlining(t *testing.T) {
	t.Parallel()

	content := []string{strings.Repeat("x", 600)}

	hist := intent.Decision{Intent: intent.IntentHistory}
	res := New().Generate(hist, testExtractor.Extract("history?"), nil, content, nil)
	if !strings.Contains(res.Reply, "From our website") {
		t.Errorf("history reply did not inline content")
	}
	if !strings.Contains(res.Reply, strings.Repeat("x", 500)+"...") {
		t.Errorf("inlined content not truncated to preview size")
	}

	fees := intent.Decision{Intent: intent.IntentFees}
	res = New().Generate(fees, testExtractor.Extract("fees?"), nil, content, nil)
	if strings.Contains(res.Reply, "From our website") {
		t.Errorf("template-complete intent inlined content")
	}
}

func TestSelectCTAs(t *testing.T) {
	t.Parallel()

	// Comparison appends the comparison tool.
	ctas := selectCTAs(intent.IntentPrograms, nlp.Signals{Comparison: true}, nil)
	if len(ctas) != 3 || ctas[2] != comparisonCTA {
		t.Errorf("comparison CTAs = %v; want comparison tool appended", ctas)
	}

	// Urgency plus comparison would exceed the cap; the cap wins.
	ctas = selectCTAs(intent.IntentPrograms, nlp.Signals{Urgency: true, Comparison: true}, nil)
	if len(ctas) != maxCTAs || ctas[0] != urgentCTA {
		t.Errorf("capped CTAs = %v; want %d with urgent first", ctas, maxCTAs)
	}

	// Unknown intents fall back to the default pair.
	ctas = selectCTAs(intent.IntentGeneral, nlp.Signals{}, nil)
	if len(ctas) != len(defaultCTAs) || ctas[0] != defaultCTAs[0] {
		t.Errorf("default CTAs = %v; want %v", ctas, defaultCTAs)
	}
}

func TestSelectCTAs_HarvestedLinks(t *testing.T) {
	t.Parallel()

	harvested := []api.CTA{
		{Text: "Apply Online", URL: "https://forms.office.com/r/mpti-apply"},
		{Text: "Start Application", URL: "https://www.mptigh.com/admissions"},
	}

	// Application intent leads with scraped links; duplicates of the
	// static table collapse by URL.
	ctas := selectCTAs(intent.IntentApplication, nlp.Signals{}, harvested)
	if len(ctas) != 3 || ctas[0] != harvested[0] {
		t.Fatalf("application CTAs = %v; want harvested form first", ctas)
	}
	urls := map[string]int{}
	for _, c := range ctas {
		urls[c.URL]++
	}
	if urls["https://www.mptigh.com/admissions"] != 1 {
		t.Errorf("admissions URL duplicated: %v", ctas)
	}

	if ctas = selectCTAs(intent.IntentTactProgram, nlp.Signals{}, harvested); ctas[0] != harvested[0] {
		t.Errorf("tact CTAs = %v; want harvested form first", ctas)
	}

	// Other intents stay on their static tables.
	ctas = selectCTAs(intent.IntentFees, nlp.Signals{}, harvested)
	for _, c := range ctas {
		if c.URL == harvested[0].URL {
			t.Errorf("fees CTAs surfaced harvested link: %v", ctas)
		}
	}
}

func TestSuggestions_FiltersShownAndPersonalizes(t *testing.T) {
	t.Parallel()

	st := convo.NewStore(0)
	sess, _ := st.GetOrCreate("")

	first := Suggestions(intent.IntentPrograms, sess, StyleStandard)
	if len(first) != 3 {
		t.Fatalf("first suggestions = %v; want 3", first)
	}

	sess.RecordTurn(convo.Turn{
		Message:     "tell me about tact",
		Analysis:    testExtractor.Extract("tell me about tact"),
		Intent:      intent.IntentTactProgram,
		Suggestions: first,
		Timestamp:   time.Now(),
	})

	second := Suggestions(intent.IntentPrograms, sess, StyleStandard)
	if len(second) == 0 || second[0] != suggestTactRequirements {
		t.Errorf("second suggestions = %v; want personalized TACT entry first", second)
	}
	for _, s := range second {
		for _, f := range first {
			if s == f {
				t.Errorf("suggestion %q repeated within the session", s)
			}
		}
	}
}

func TestSuggestions_DetailedStyleShortens(t *testing.T) {
	t.Parallel()

	got := Suggestions(intent.IntentPrograms, nil, StyleDetailed)
	if len(got) != 2 {
		t.Errorf("detailed suggestions = %v; want 2", got)
	}
}
