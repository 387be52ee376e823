// ABOUTME: Fixed template tables: intent bodies, style leads, tone wrappers, CTAs, suggestions
// ABOUTME: All table-driven so tests can reason about composition without string surgery

package respond

import (
	"github.com/mauromedda/campusbot-go/internal/intent"
	"github.com/mauromedda/campusbot-go/pkg/api"
)

// Style picks the lead-in and shapes body detail. First matching rule
// wins: urgent, detailed, comparison, standard.
type Style string

const (
	StyleUrgent     Style = "urgent"
	StyleDetailed   Style = "detailed"
	StyleComparison Style = "comparison"
	StyleStandard   Style = "standard"
)

// styleLeads prefix the body per intent and style. Missing entries fall
// back to the intent body alone.
var styleLeads = map[string]map[Style]string{
	intent.IntentPrograms: {
		StyleUrgent:     "Here is the program information you need right away:",
		StyleDetailed:   "Let me provide detailed information about our programs:",
		StyleComparison: "Here's a comparison of our programs to help you decide:",
	},
	intent.IntentApplication: {
		StyleUrgent:   "I understand you need application information quickly! Here's what you need:",
		StyleDetailed: "Let me walk you through the complete application process:",
	},
	intent.IntentTactProgram: {
		StyleUrgent:   "Here is the TACT program information you need right away:",
		StyleDetailed: "Let me give you the full picture of the TACT program:",
	},
}

// bodies are the per-intent reply cores.
var bodies = map[string]string{
	intent.IntentGreeting: `👋 Hello! Welcome to MPTI Technical Institute!

I can help you with:
- 🎓 Programs and courses
- 🚀 TACT program information
- 📝 Admissions process
- 📞 Contact information

What would you like to know?`,

	intent.IntentTactProgram: `🚀 **TACT Program**

Technical Advancement and Certification Training for professional development.`,

	intent.IntentApplication: `📝 **Ready to Join MPTI Technical Institute?**

- Applications accepted year-round
- Entry requirements vary by program
- Financial aid and scholarships available`,

	intent.IntentPrograms: `🎓 **MPTI Technical Institute Programs**

- Technical education programs
- Engineering and technology courses
- Professional certification programs
- TACT program (Technical Advancement)
- Skills development training`,

	intent.IntentContact: `📞 **Get in Touch with MPTI**

- 🌐 Website: https://www.mptigh.com/
- 📧 Contact page: https://www.mptigh.com/contact`,

	intent.IntentHistory: `🏛️ **MPTI Technical Institute History**

MPTI Technical Institute has been serving the technical education community, establishing itself as a leading institution in technical and engineering education.`,

	intent.IntentFees: `💰 **Fees and Financial Support**

- Tuition varies by program and schedule
- Payment plans are available
- Scholarship opportunities for qualifying students`,

	intent.IntentRequirements: `📋 **Entry Requirements**

- Requirements vary by program
- Transcripts and identification are needed for every application
- The admissions team reviews each application individually`,

	intent.IntentSchedule: `📅 **Schedules and Timing**

- Programs run on a semester basis
- Multiple start dates per year
- Morning and evening class options`,

	intent.IntentGeneral: `🏫 **Welcome to MPTI Technical Institute!**

I'm here to help with MPTI information. Ask me about programs, admissions, fees, or schedules.`,
}

// entityLines surface program entities the user mentioned by name.
var entityLines = map[string]string{
	"tact":            "🚀 **TACT Program** - Our flagship professional development program",
	"mechanical":      "⚙️ **Mechanical Engineering Technology** - Hands-on training with industry equipment",
	"electrical":      "⚡ **Electrical Engineering Technology** - Power systems and control technology",
	"welding":         "🔥 **Welding and Fabrication** - Advanced welding techniques and certification",
	"instrumentation": "🎛️ **Instrumentation and Control** - Process control and automation systems",
}

// tone wrappers, independent of style.
var (
	positiveOpener = "Great to hear from you! "
	negativeOpener = "I'm sorry you're having a frustrating time. Let me help. "
	positiveCloser = "\n\nHappy to dig into any of this further!"
	negativeCloser = "\n\nIf anything is still unclear, I'm here to help."
)

// maxCTAs bounds the next-steps block.
const maxCTAs = 3

var ctaTable = map[string][]api.CTA{
	intent.IntentTactProgram: {
		{Text: "Learn More About TACT", URL: "https://www.mptigh.com/tact-program"},
		{Text: "Apply for TACT Program", URL: "https://www.mptigh.com/admissions"},
	},
	intent.IntentApplication: {
		{Text: "Start Application", URL: "https://www.mptigh.com/admissions"},
		{Text: "Contact Admissions", URL: "https://www.mptigh.com/contact"},
	},
	intent.IntentPrograms: {
		{Text: "View All Programs", URL: "https://www.mptigh.com/programs"},
		{Text: "Apply Now", URL: "https://www.mptigh.com/admissions"},
	},
	intent.IntentContact: {
		{Text: "Contact Us", URL: "https://www.mptigh.com/contact"},
		{Text: "Visit Campus", URL: "https://www.mptigh.com/about"},
	},
}

var defaultCTAs = []api.CTA{
	{Text: "Explore Programs", URL: "https://www.mptigh.com/programs"},
	{Text: "Apply Now", URL: "https://www.mptigh.com/admissions"},
}

var urgentCTA = api.CTA{Text: "Immediate Assistance: call our admissions hotline", URL: "https://www.mptigh.com/contact"}

var comparisonCTA = api.CTA{Text: "Compare Programs", URL: "https://www.mptigh.com/programs"}

// maxSuggestions bounds the follow-up list.
const maxSuggestions = 3

// followUps are the static per-intent suggestion pools, in declared
// order. Greeting and general deliberately have none.
var followUps = map[string][]string{
	intent.IntentPrograms: {
		"Would you like to know about specific program requirements?",
		"Are you interested in full-time or part-time study options?",
		"Do you have a particular engineering specialization in mind?",
	},
	intent.IntentApplication: {
		"Do you have questions about application requirements?",
		"Would you like information about financial aid options?",
		"Are you ready to schedule a campus visit?",
	},
	intent.IntentTactProgram: {
		"Are you currently working in a technical field?",
		"Would you like to know about TACT program scheduling?",
		"Do you need information about TACT certification requirements?",
	},
	intent.IntentFees: {
		"Would you like details on payment plans?",
		"Are you interested in scholarship opportunities?",
	},
	intent.IntentRequirements: {
		"Would you like to see the requirements for a specific program?",
		"Do you want help preparing your application documents?",
	},
	intent.IntentSchedule: {
		"Would morning or evening classes suit you better?",
		"Do you want the start dates for a specific program?",
	},
}

// Personalized suggestions derived from session context flags.
const (
	suggestTactRequirements = "Learn more about TACT program requirements"
	suggestApplicationSteps = "View application deadlines and requirements"
	suggestComparePrograms  = "Compare different program options"
)
