// Package validation holds the per-call checks an emitter runs on
// registration and emission.
package validation

import "github.com/SeaCloudHub/eventually/domain/event"

// Arity checks a received argument count against the declared policy of an
// event. Registration passes the handler arity, emission the payload length.
type Arity struct {
	decl     *event.Declaration
	event    string
	received int
	op       event.Op
}

func NewArity(decl *event.Declaration, name string, received int, op event.Op) Arity {
	return Arity{decl: decl, event: name, received: received, op: op}
}

func (a Arity) Received() int {
	return a.received
}

// Expected returns the declared count. ok is false when the event is
// undeclared or unconstrained.
func (a Arity) Expected() (n int, ok bool) {
	policy, declared := a.decl.PolicyOf(a.event)
	if !declared {
		return 0, false
	}

	return policy.Expected()
}

func (a Arity) Valid() bool {
	policy, declared := a.decl.PolicyOf(a.event)
	return !declared || policy.Allows(a.received)
}

// Err returns an *event.ArityMismatchError when the check fails.
func (a Arity) Err() error {
	if a.Valid() {
		return nil
	}
	expected, _ := a.Expected()

	return &event.ArityMismatchError{
		Event:    a.event,
		Expected: expected,
		Received: a.received,
		Op:       a.op,
	}
}
