package event

// Event is the per-instance record of one event name and its listeners.
type Event struct {
	name      string
	emittable bool
	callables []*Callable
}

func NewEvent(name string, emittable bool) *Event {
	return &Event{name: name, emittable: emittable}
}

func (e *Event) Name() string {
	return e.name
}

// Emittable is fixed when the event is created. A non-emittable event
// rejects both registration and emission.
func (e *Event) Emittable() bool {
	return e.emittable
}

// Callables returns the live listener slice. Callers must not modify it.
func (e *Event) Callables() []*Callable {
	return e.callables
}

func (e *Event) Len() int {
	return len(e.callables)
}

// Add appends c. A nil callable is ignored.
func (e *Event) Add(c *Callable) error {
	if !e.emittable {
		return &UnknownEventError{Event: e.name, Op: OpRegister}
	}
	if c == nil {
		return nil
	}
	e.callables = append(e.callables, c)

	return nil
}

// Remove drops every callable that is h or wraps h and returns how many
// were removed. A dispatch pass in progress skips them.
func (e *Event) Remove(h Handler) int {
	kept := e.callables[:0:0]
	removed := 0
	for _, c := range e.callables {
		if c.Matches(h) {
			c.removed = true
			removed++
			continue
		}
		kept = append(kept, c)
	}
	e.callables = kept

	return removed
}

// RemoveAll drops every callable. The emittable flag is unchanged.
func (e *Event) RemoveAll() {
	for _, c := range e.callables {
		c.removed = true
	}
	e.callables = nil
}

// Emit invokes the listeners in registration order and stops at the first
// error, which is returned as is. The pass walks a copy of the listener
// slice taken on entry: listeners removed meanwhile are skipped, listeners
// added meanwhile wait for the next emission. Fired one-shot listeners are
// purged when the pass ends, whether or not it failed.
func (e *Event) Emit(args ...any) error {
	if !e.emittable {
		return &UnknownEventError{Event: e.name, Op: OpEmit}
	}
	if len(e.callables) == 0 {
		return nil
	}

	pass := make([]*Callable, len(e.callables))
	copy(pass, e.callables)
	defer e.purge()

	for _, c := range pass {
		if !c.live() {
			continue
		}
		if !c.IsContinuous() {
			c.spent = true
		}
		if err := c.Invoke(args...); err != nil {
			return err
		}
	}

	return nil
}

func (e *Event) purge() {
	kept := e.callables[:0:0]
	for _, c := range e.callables {
		if c.live() {
			kept = append(kept, c)
		}
	}
	e.callables = kept
}
