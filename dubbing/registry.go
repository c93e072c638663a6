package dubbing

import (
	"sync"
	"time"
)

// Registry maps run tokens to live runs. Everything is in-memory; a run
// exists only for the session that created it.
type Registry struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]*Run)}
}

// Create makes a fresh run and registers it under its token.
func (g *Registry) Create() *Run {
	run := NewRun()
	g.mu.Lock()
	g.runs[run.Token] = run
	g.mu.Unlock()
	return run
}

func (g *Registry) Get(token string) (*Run, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	run, ok := g.runs[token]
	return run, ok
}

// Evict drops runs untouched for at least ttl. In-flight runs are never
// evicted. Returns the number removed.
func (g *Registry) Evict(ttl time.Duration) int {
	now := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for token, run := range g.runs {
		if run.idleSince(ttl, now) {
			delete(g.runs, token)
			removed++
		}
	}
	return removed
}

// Len reports the number of live runs.
func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.runs)
}
