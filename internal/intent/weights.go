// ABOUTME: Mutable pattern-weight table with JSON persistence and capped reinforcement
// ABOUTME: Safe for concurrent scoring reads against reinforcement writes

package intent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mauromedda/campusbot-go/internal/log"
)

// Weight bounds and learning step.
const (
	baseWeight     = 1.0
	maxWeight      = 3.0
	reinforceDelta = 0.1
)

// Table maps (intent, pattern token) to a weight in [0, maxWeight].
// The key set is fixed at construction from the vocabulary; learning
// only moves weight values.
type Table struct {
	mu      sync.RWMutex
	weights map[string]map[string]float64
	path    string
	dirty   bool

	// saveMu serializes concurrent savers without blocking scoring.
	saveMu sync.Mutex
}

// NewTable builds a table with every vocabulary entry at the base
// weight. If path is non-empty and the file exists, saved weights
// overlay the defaults; a corrupt file is logged and ignored.
func NewTable(path string) *Table {
	t := &Table{
		weights: make(map[string]map[string]float64, len(vocabulary)),
		path:    path,
	}
	for label, tokens := range vocabulary {
		m := make(map[string]float64, len(tokens))
		for _, tok := range tokens {
			m[tok] = baseWeight
		}
		t.weights[label] = m
	}
	if path != "" {
		t.load(path)
	}
	return t
}

func (t *Table) load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("reading weights from %s: %v", path, err)
		}
		return
	}

	var saved map[string]map[string]float64
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("ignoring corrupt weights file %s: %v", path, err)
		return
	}

	// Only known keys are accepted; saved values are clamped.
	for label, tokens := range saved {
		current, ok := t.weights[label]
		if !ok {
			continue
		}
		for tok, w := range tokens {
			if _, ok := current[tok]; !ok {
				continue
			}
			current[tok] = clampWeight(w)
		}
	}
	log.Debug("loaded intent weights from %s", path)
}

// Get returns the weight for one intent pattern, or zero for an
// unknown key.
func (t *Table) Get(intent, token string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.weights[intent][token]
}

// Reinforce bumps the weight of each matched token for the winning
// intent. Weights never exceed maxWeight.
func (t *Table) Reinforce(intent string, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.weights[intent]
	if !ok {
		return
	}
	for _, tok := range tokens {
		if w, ok := m[tok]; ok {
			m[tok] = clampWeight(w + reinforceDelta)
		}
	}
	t.dirty = true
}

// Dirty reports whether the table has unsaved reinforcement.
func (t *Table) Dirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dirty
}

// Save writes the table as JSON to its configured path. It is a no-op
// when nothing changed since the last save. The weights lock is held
// only long enough to copy the table, so scoring reads never wait on
// disk. A failed save leaves the table dirty so the next trigger
// retries.
func (t *Table) Save() error {
	t.saveMu.Lock()
	defer t.saveMu.Unlock()

	t.mu.Lock()
	if t.path == "" || !t.dirty {
		t.mu.Unlock()
		return nil
	}
	t.dirty = false
	snapshot := copyWeights(t.weights)
	t.mu.Unlock()

	if err := writeWeights(t.path, snapshot); err != nil {
		t.mu.Lock()
		t.dirty = true
		t.mu.Unlock()
		return err
	}
	return nil
}

func writeWeights(path string, weights map[string]map[string]float64) error {
	data, err := json.MarshalIndent(weights, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding weights: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating weights dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing weights: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing weights file: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the current weights.
func (t *Table) Snapshot() map[string]map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copyWeights(t.weights)
}

func copyWeights(weights map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(weights))
	for label, tokens := range weights {
		m := make(map[string]float64, len(tokens))
		for tok, w := range tokens {
			m[tok] = w
		}
		out[label] = m
	}
	return out
}

func clampWeight(w float64) float64 {
	switch {
	case w < 0:
		return 0
	case w > maxWeight:
		return maxWeight
	default:
		return w
	}
}
