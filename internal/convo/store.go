// ABOUTME: Session store keyed by id with TTL eviction on a schedule outside the request path
// ABOUTME: Store-level lock guards the map only; per-session state has its own lock

package convo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mauromedda/campusbot-go/internal/log"
)

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 30 * time.Minute

// Store holds every live session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store with the given idle TTL. A zero ttl means
// DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// GetOrCreate returns the session for id, creating one with a fresh
// generated id when id is empty or unknown. The second result reports
// whether a new session was created. Lookup alone does not refresh the
// activity timestamp.
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if s, ok := st.sessions[id]; ok {
			return s, false
		}
	}
	s := newSession(uuid.NewString(), st.now())
	st.sessions[s.ID] = s
	return s, true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// SweepExpired evicts every session idle longer than the TTL and
// returns how many were removed.
func (st *Store) SweepExpired() int {
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.LastActive().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs SweepExpired on the given interval until ctx is
// done. It never touches the request path.
func (st *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := st.SweepExpired(); n > 0 {
					log.Debug("swept %d expired sessions", n)
				}
			}
		}
	}()
}
