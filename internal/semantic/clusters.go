// ABOUTME: Fixed concept clusters and synonym table for semantic concept matching
// ABOUTME: Clusters map a concept label to member terms; synonyms widen token matching

package semantic

// Concept labels.
const (
	ConceptEducation   = "education"
	ConceptApplication = "application"
	ConceptFinancial   = "financial"
	ConceptTechnical   = "technical"
	ConceptTime        = "time"
	ConceptLocation    = "location"
)

// clusters maps each concept label to its canonical member terms.
// Per-concept scores are normalized by the member count, so adding a
// term here dilutes every other term in the same cluster.
var clusters = map[string][]string{
	ConceptEducation:   {"learn", "study", "education", "training", "course", "program", "curriculum", "academic"},
	ConceptApplication: {"apply", "enroll", "register", "admission", "join", "signup", "form"},
	ConceptFinancial:   {"cost", "fee", "price", "tuition", "payment", "scholarship", "financial", "money"},
	ConceptTechnical:   {"engineering", "technology", "technical", "mechanical", "electrical", "welding"},
	ConceptTime:        {"when", "schedule", "time", "duration", "start", "end", "semester", "year"},
	ConceptLocation:    {"where", "location", "address", "campus", "ghana", "accra"},
}

// synonyms maps a canonical term to tokens that count as matching it.
var synonyms = map[string][]string{
	"program":     {"course", "curriculum", "study", "training", "education"},
	"apply":       {"enroll", "register", "join", "signup", "admission"},
	"cost":        {"fee", "price", "tuition", "payment", "expense"},
	"requirement": {"prerequisite", "qualification", "criteria", "condition"},
	"contact":     {"reach", "call", "email", "phone", "communicate"},
	"schedule":    {"time", "duration", "when", "timing", "calendar"},
}
