package listeners

import (
	"maps"
	"sync"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/domain/event"
)

// Tally counts emissions per event name. Its counters may be read from
// other goroutines while the emitter dispatches.
type Tally struct {
	mu     sync.RWMutex
	counts map[string]uint64
}

func NewTally() *Tally {
	return &Tally{
		counts: make(map[string]uint64),
	}
}

// Track registers a counting listener on each name. The listener takes the
// arity the event is declared with, so constrained events accept it.
func (t *Tally) Track(em *emitter.Emitter, names ...string) error {
	for _, name := range names {
		if _, err := em.On(name, t.Handler(name, em.Declaration())); err != nil {
			return err
		}
	}

	return nil
}

// Handler returns a listener that increments the counter of name.
func (t *Tally) Handler(name string, decl *event.Declaration) event.Handler {
	count := func(...any) error {
		t.increment(name)
		return nil
	}

	if policy, ok := decl.PolicyOf(name); ok {
		if n, exact := policy.Expected(); exact {
			return event.FuncN(n, count)
		}
	}

	return event.Variadic(count)
}

func (t *Tally) TotalFor(name string) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.counts[name]
}

// Totals returns a copy of every counter.
func (t *Tally) Totals() map[string]uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make(map[string]uint64, len(t.counts))
	maps.Copy(snapshot, t.counts)

	return snapshot
}

func (t *Tally) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts = make(map[string]uint64)
}

func (t *Tally) increment(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[name]++
}
