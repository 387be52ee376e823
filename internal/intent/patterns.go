// ABOUTME: Fixed intent vocabulary compiled to word-boundary patterns, plus intent metadata
// ABOUTME: Priority order, related-intent graph, and intent-to-concept mapping live here

package intent

import (
	"regexp"
	"strings"
)

// Intent labels. The classifier never invents labels outside this set.
const (
	IntentHistory      = "history"
	IntentTactProgram  = "tact_program"
	IntentApplication  = "application"
	IntentPrograms     = "programs"
	IntentContact      = "contact"
	IntentGreeting     = "greeting"
	IntentFees         = "fees"
	IntentRequirements = "requirements"
	IntentSchedule     = "schedule"
	IntentGeneral      = "general"
)

// priority is the declared intent order. It fixes map iteration and
// breaks confidence ties: the earlier intent wins.
var priority = []string{
	IntentHistory,
	IntentTactProgram,
	IntentApplication,
	IntentPrograms,
	IntentContact,
	IntentGreeting,
	IntentFees,
	IntentRequirements,
	IntentSchedule,
}

// vocabulary maps each intent to its pattern tokens. This is the base
// key set of the weight table; keys never change at runtime, only the
// weights attached to them.
var vocabulary = map[string][]string{
	IntentHistory:      {"how long", "when founded", "established", "history", "existence", "started", "began", "old", "years"},
	IntentTactProgram:  {"tact", "technical advancement", "certification training", "professional development"},
	IntentApplication:  {"apply", "admission", "enroll", "form", "register", "join", "signup"},
	IntentPrograms:     {"program", "course", "study", "degree", "curriculum", "major", "specialization"},
	IntentContact:      {"contact", "phone", "email", "address", "location", "reach", "call"},
	IntentGreeting:     {"hello", "hi", "hey", "good morning", "good afternoon", "greetings"},
	IntentFees:         {"fee", "cost", "price", "tuition", "payment", "scholarship", "financial"},
	IntentRequirements: {"requirement", "prerequisite", "qualification", "criteria", "eligibility"},
	IntentSchedule:     {"schedule", "time", "duration", "when", "start", "semester", "class"},
}

// related maps an intent to the intents a user tends to ask about next.
// A recent intent in this graph boosts its related candidates.
var related = map[string][]string{
	IntentPrograms:     {IntentRequirements, IntentFees, IntentSchedule},
	IntentTactProgram:  {IntentApplication, IntentRequirements, IntentFees},
	IntentApplication:  {IntentRequirements, IntentFees, IntentPrograms},
	IntentRequirements: {IntentPrograms, IntentApplication},
}

// concepts maps an intent to the semantic clusters that corroborate it.
var concepts = map[string][]string{
	IntentPrograms:     {"education", "technical"},
	IntentTactProgram:  {"education", "technical"},
	IntentApplication:  {"application", "financial"},
	IntentFees:         {"financial"},
	IntentRequirements: {"education", "application"},
	IntentSchedule:     {"time"},
	IntentContact:      {"location"},
}

// pattern is one compiled vocabulary entry.
type pattern struct {
	re    *regexp.Regexp
	token string
}

var compiled map[string][]pattern

func init() {
	compiled = make(map[string][]pattern, len(vocabulary))
	for label, tokens := range vocabulary {
		compiled[label] = compilePatterns(tokens)
	}
}

// compilePatterns turns vocabulary tokens into word-boundary regexes.
// Multi-word phrases match exactly; longer single words also accept
// common suffixes so "program" covers "programs" and "apply" covers
// "applying". Very short words stay exact to avoid accidental matches
// inside unrelated words.
func compilePatterns(tokens []string) []pattern {
	out := make([]pattern, len(tokens))
	for i, tok := range tokens {
		var expr string
		switch {
		case strings.Contains(tok, " "):
			expr = `(?i)\b` + regexp.QuoteMeta(tok) + `\b`
		case len(tok) <= 2:
			expr = `(?i)\b` + regexp.QuoteMeta(tok) + `\b`
		default:
			expr = `(?i)\b` + regexp.QuoteMeta(tok) + `(?:es|s|ed|ing)?\b`
		}
		out[i] = pattern{re: regexp.MustCompile(expr), token: tok}
	}
	return out
}
