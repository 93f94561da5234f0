package event

import (
	"errors"
	"fmt"
)

// Op names the call that produced an error.
type Op string

const (
	OpRegister Op = "register"
	OpEmit     Op = "emit"
)

var (
	ErrUnknownEvent    = errors.New("unknown event")
	ErrArityMismatch   = errors.New("arity mismatch")
	ErrInvalidCallable = &InvalidCallableError{}
)

// UnknownEventError is returned when a strict type is asked to register or
// emit an event it never declared.
type UnknownEventError struct {
	Event string
	Type  string
	Op    Op
}

func (e *UnknownEventError) Error() string {
	verb := "will not be"
	if e.Op == OpEmit {
		verb = "cannot be"
	}

	if e.Type == "" {
		return fmt.Sprintf("event type :%s %s emitted", e.Event, verb)
	}

	return fmt.Sprintf("event type :%s %s emitted. Use %s.Emits(:%s)", e.Event, verb, e.Type, e.Event)
}

func (e *UnknownEventError) Is(target error) bool {
	return target == ErrUnknownEvent
}

// InvalidCallableError is returned when neither an explicit handler nor a
// fallback handler can be invoked.
type InvalidCallableError struct{}

func (e *InvalidCallableError) Error() string {
	return "cannot register callable. Neither callable nor block was given"
}

func (e *InvalidCallableError) Is(target error) bool {
	_, ok := target.(*InvalidCallableError)
	return ok
}

// ArityMismatchError carries the declared and received argument counts of a
// constrained event.
type ArityMismatchError struct {
	Event    string
	Expected int
	Received int
	Op       Op
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity validation failed for event :%s (expected %d, received %d)",
		e.Event, e.Expected, e.Received)
}

func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}

// PayloadTypeError is returned by typed handlers when an emitted value does
// not have the expected Go type.
type PayloadTypeError struct {
	Index    int
	Expected string
	Got      any
}

func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("payload argument %d: expected %s, got %T", e.Index, e.Expected, e.Got)
}
