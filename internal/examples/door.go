package examples

import (
	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/domain/event"
)

const (
	EventOpened = "opened"
	EventClosed = "closed"
)

func init() {
	decl := event.For[Door]()
	decl.EnableStrict()
	decl.Emits(EventOpened, EventClosed)
}

// Door is strict: only opened and closed may be listened to or emitted.
type Door struct {
	*emitter.Emitter
}

func NewDoor(options ...emitter.Option) *Door {
	return &Door{Emitter: emitter.New(event.For[Door](), options...)}
}

func (d *Door) Open() error {
	return d.Emit(EventOpened)
}

func (d *Door) Close() error {
	return d.Emit(EventClosed)
}
