// Package examples holds small event sources used by the demo program and
// the HTTP introspection server.
package examples

import (
	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/domain/event"
)

const (
	EventDriving = "driving"
	EventStopped = "stopped"
	EventTurning = "turning"
)

func init() {
	decl := event.For[Car]()
	decl.EmitsArity(EventDriving, 1)
	decl.EmitsArity(EventStopped, 0)
	decl.EmitsArity(EventTurning, 3)
}

// Car validates listener arity on every event it emits.
type Car struct {
	*emitter.Emitter
}

func NewCar(options ...emitter.Option) *Car {
	return &Car{Emitter: emitter.New(event.For[Car](), options...)}
}

func (c *Car) Drive(mph int) error {
	return c.Emit(EventDriving, mph)
}

func (c *Car) Stop() error {
	return c.Emit(EventStopped)
}

func (c *Car) Turn(direction string, degrees int, signaled bool) error {
	return c.Emit(EventTurning, direction, degrees, signaled)
}
