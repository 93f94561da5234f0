// Package emitter implements the synchronous, per-instance event emitter
// that Go types embed to become event sources.
package emitter

import (
	"io"
	"os"

	"github.com/SeaCloudHub/eventually/domain"
	"github.com/SeaCloudHub/eventually/domain/event"
	"github.com/SeaCloudHub/eventually/domain/validation"
	"go.uber.org/zap"
)

type Option func(e *Emitter)

// WithOutput sets where the max listeners warning is written. Defaults to
// os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(e *Emitter) {
		e.out = w
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Emitter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Emitter owns the listeners of one instance. Listeners run on the calling
// goroutine, in registration order, and may emit again from inside a
// dispatch. An Emitter is not safe for concurrent use.
type Emitter struct {
	decl   *event.Declaration
	events map[string]*event.Event
	out    io.Writer
	logger *zap.SugaredLogger
}

var _ domain.EventEmitter = (*Emitter)(nil)

func New(decl *event.Declaration, options ...Option) *Emitter {
	e := &Emitter{
		decl:   decl,
		events: make(map[string]*event.Event),
		out:    os.Stderr,
		logger: zap.NewNop().Sugar(),
	}

	for _, fn := range options {
		fn(e)
	}

	return e
}

func (e *Emitter) Declaration() *event.Declaration {
	return e.decl
}

// On registers a continuous listener and returns its handle.
func (e *Emitter) On(name string, h event.Handler) (*event.Callable, error) {
	return e.Register(name, h, nil, event.Continuous)
}

// Once registers a listener that is dropped after its first invocation.
func (e *Emitter) Once(name string, h event.Handler) (*event.Callable, error) {
	return e.Register(name, h, nil, event.Once)
}

// Register is the general form of On and Once: explicit is used when it can
// be invoked, block otherwise.
//
// After the listener is appended, listener_added is emitted with the new
// *event.Callable. An error returned by a listener_added listener is passed
// through after the listener threshold is checked; the new listener stays
// registered in that case.
func (e *Emitter) Register(name string, explicit, block event.Handler, availability event.Availability) (*event.Callable, error) {
	if !e.decl.CanRegisterOrEmit(name) {
		return nil, e.unknown(name, event.OpRegister)
	}

	cbk, err := event.NewCallable(explicit, block, availability)
	if err != nil {
		return nil, err
	}

	if err := validation.NewArity(e.decl, name, cbk.Arity(), event.OpRegister).Err(); err != nil {
		return nil, err
	}

	if err := e.event(name).Add(cbk); err != nil {
		return nil, err
	}

	e.logger.Debugw("listener registered",
		zap.String("type", e.decl.Name()),
		zap.String("event", name),
		zap.Stringer("listener_id", cbk.ID()),
		zap.Int("arity", cbk.Arity()),
		zap.Stringer("availability", availability),
	)

	var notifyErr error
	if observers, ok := e.events[event.ListenerAdded]; ok && observers.Len() > 0 {
		notifyErr = e.Emit(event.ListenerAdded, cbk)
	}

	validation.NewMaxListeners(e.decl, e).WarnUnlessValid(e.out)

	return cbk, notifyErr
}

// Emit calls every listener of name with payload and returns the first
// listener error unchanged. Emitting an event nobody listens to is a no-op.
func (e *Emitter) Emit(name string, payload ...any) error {
	if !e.decl.CanRegisterOrEmit(name) {
		return e.unknown(name, event.OpEmit)
	}

	if err := validation.NewArity(e.decl, name, len(payload), event.OpEmit).Err(); err != nil {
		return err
	}

	evt, ok := e.events[name]
	if !ok {
		return nil
	}

	e.logger.Debugw("event emitted",
		zap.String("type", e.decl.Name()),
		zap.String("event", name),
		zap.Int("listeners", evt.Len()),
	)

	return evt.Emit(payload...)
}

// Listeners returns the live listener slice of name. Callers must not
// modify it.
func (e *Emitter) Listeners(name string) []*event.Callable {
	evt, ok := e.events[name]
	if !ok {
		return nil
	}

	return evt.Callables()
}

// RemoveListener drops every registration of h on name. h may be the handle
// returned by On or the handler that was passed to it.
func (e *Emitter) RemoveListener(name string, h event.Handler) {
	if evt, ok := e.events[name]; ok {
		evt.Remove(h)
	}
}

func (e *Emitter) RemoveAllListeners(name string) {
	if evt, ok := e.events[name]; ok {
		evt.RemoveAll()
	}
}

// NumListeners counts listeners across every event of the instance.
func (e *Emitter) NumListeners() int {
	n := 0
	for _, evt := range e.events {
		n += evt.Len()
	}

	return n
}

func (e *Emitter) event(name string) *event.Event {
	evt, ok := e.events[name]
	if !ok {
		evt = event.NewEvent(name, e.decl.CanRegisterOrEmit(name))
		e.events[name] = evt
	}

	return evt
}

func (e *Emitter) unknown(name string, op event.Op) error {
	return &event.UnknownEventError{Event: name, Type: e.decl.Name(), Op: op}
}
