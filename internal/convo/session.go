// ABOUTME: Per-session conversation state: bounded history, recent intents, context flags
// ABOUTME: Each session carries its own lock so turns on different sessions never contend

package convo

import (
	"sync"
	"time"

	"github.com/mauromedda/campusbot-go/internal/intent"
	"github.com/mauromedda/campusbot-go/internal/nlp"
)

// History and context-window bounds.
const (
	MaxHistory   = 10
	RecentWindow = 3
)

// Turn is one completed exchange. Immutable once recorded.
type Turn struct {
	Message     string
	Analysis    nlp.Analysis
	Intent      string
	Confidence  float64
	Suggestions []string
	Timestamp   time.Time
}

// Flags is a read-only snapshot of a session's derived context.
type Flags struct {
	ExploredPrograms       []string
	ConsideringApplication bool
	InterestedInTact       bool
}

// Session is one user's bounded conversation memory.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu          sync.RWMutex
	lastActive  time.Time
	history     []Turn
	recent      []string
	explored    []string // program entities in first-seen order
	exploredSet map[string]struct{}
	considering bool // sticky once an application intent lands
	tact        bool
	shown       map[string]struct{}
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:          id,
		CreatedAt:   now,
		lastActive:  now,
		exploredSet: make(map[string]struct{}),
		shown:       make(map[string]struct{}),
	}
}

// RecordTurn appends the turn, updates the recent-intent window and
// context flags, and refreshes the activity timestamp. History evicts
// oldest-first at capacity.
func (s *Session) RecordTurn(turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, turn)
	if len(s.history) > MaxHistory {
		s.history = s.history[len(s.history)-MaxHistory:]
	}

	s.recent = append(s.recent, turn.Intent)
	if len(s.recent) > RecentWindow {
		s.recent = s.recent[len(s.recent)-RecentWindow:]
	}

	for _, prog := range turn.Analysis.Entities[nlp.CategoryPrograms] {
		if _, ok := s.exploredSet[prog]; ok {
			continue
		}
		s.exploredSet[prog] = struct{}{}
		s.explored = append(s.explored, prog)
		if prog == "tact" {
			s.tact = true
		}
	}
	switch turn.Intent {
	case intent.IntentApplication:
		s.considering = true
	case intent.IntentTactProgram:
		s.tact = true
	}

	for _, sug := range turn.Suggestions {
		s.shown[sug] = struct{}{}
	}

	if !turn.Timestamp.IsZero() {
		s.lastActive = turn.Timestamp
	}
}

// RecentIntents returns the bounded recent-intent window, oldest first.
func (s *Session) RecentIntents() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.recent...)
}

// History returns a copy of the recorded turns, oldest first.
func (s *Session) History() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Turn(nil), s.history...)
}

// Flags returns a snapshot of the derived context flags.
func (s *Session) Flags() Flags {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Flags{
		ExploredPrograms:       append([]string(nil), s.explored...),
		ConsideringApplication: s.considering,
		InterestedInTact:       s.tact,
	}
}

// Seen reports whether a suggestion was already surfaced this session.
func (s *Session) Seen(suggestion string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.shown[suggestion]
	return ok
}

// LastActive returns the time of the most recent recorded turn.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}
