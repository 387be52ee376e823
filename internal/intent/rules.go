// ABOUTME: Deterministic rule-based fallback classifier with first-match priority scan
// ABOUTME: Backstops the weighted classifier when its confidence drops below the threshold

package intent

// FallbackConfidence is the fixed confidence reported for a rule hit.
// Rules either match or they don't, so there is nothing to grade.
const FallbackConfidence = 0.8

// fallbackVocabulary is a narrower, high-precision subset of the main
// vocabulary. Scanned in priority order; the first intent with any
// matching pattern wins.
var fallbackVocabulary = map[string][]string{
	IntentHistory:     {"how long", "when founded", "when established", "history", "existence", "started", "began"},
	IntentTactProgram: {"tact", "technical advancement"},
	IntentApplication: {"apply", "admission", "enroll", "form"},
	IntentPrograms:    {"program", "course", "study"},
	IntentContact:     {"contact", "phone", "email"},
	IntentGreeting:    {"hello", "hi", "hey"},
}

var fallbackCompiled map[string][]pattern

func init() {
	fallbackCompiled = make(map[string][]pattern, len(fallbackVocabulary))
	for label, tokens := range fallbackVocabulary {
		fallbackCompiled[label] = compilePatterns(tokens)
	}
}

// RuleMatcher is the fallback implementation of Classifier.
type RuleMatcher struct{}

// Classify scans intents in priority order and returns the first whose
// patterns match, or general when nothing does.
func (RuleMatcher) Classify(req Request) Decision {
	for _, label := range priority {
		for _, p := range fallbackCompiled[label] {
			if p.re.MatchString(req.Text) {
				return Decision{
					Intent:       label,
					Confidence:   FallbackConfidence,
					UsedFallback: true,
				}
			}
		}
	}
	return Decision{Intent: IntentGeneral, Confidence: 0, UsedFallback: true}
}
