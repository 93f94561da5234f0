package event

import (
	"fmt"

	"github.com/google/uuid"
)

// Availability says whether a listener survives its first invocation.
type Availability int

const (
	Continuous Availability = iota
	Once
)

func (a Availability) String() string {
	if a == Once {
		return "once"
	}

	return "continuous"
}

// Callable is a registered listener: the wrapped handler plus its
// availability. It is the handle returned by registration.
type Callable struct {
	id           uuid.UUID
	target       Handler
	availability Availability

	// spent marks a one-shot callable that already fired; removed marks one
	// taken off its event during a dispatch pass.
	spent   bool
	removed bool
}

// NewCallable wraps explicit, or block when explicit cannot be invoked.
func NewCallable(explicit, block Handler, availability Availability) (*Callable, error) {
	var target Handler
	switch {
	case invocable(explicit):
		target = explicit
	case invocable(block):
		target = block
	default:
		return nil, ErrInvalidCallable
	}

	return &Callable{
		id:           uuid.New(),
		target:       target,
		availability: availability,
	}, nil
}

func (c *Callable) ID() uuid.UUID {
	return c.id
}

// Target returns the handler that was originally supplied.
func (c *Callable) Target() Handler {
	return c.target
}

// Invoke calls the wrapped handler. Errors and panics are not intercepted.
func (c *Callable) Invoke(args ...any) error {
	return c.target.Invoke(args...)
}

// Arity is the declared argument count of the wrapped handler.
func (c *Callable) Arity() int {
	return c.target.Arity()
}

func (c *Callable) Availability() Availability {
	return c.availability
}

func (c *Callable) IsContinuous() bool {
	return c.availability == Continuous
}

// Matches reports whether h is this callable or the handler it wraps.
func (c *Callable) Matches(h Handler) bool {
	if other, ok := h.(*Callable); ok {
		return c == other
	}

	return sameHandler(c.target, h)
}

func (c *Callable) String() string {
	return fmt.Sprintf("%s(%s, %s)", c.id, describe(c.target), c.availability)
}

func (c *Callable) live() bool {
	return !c.spent && !c.removed
}
