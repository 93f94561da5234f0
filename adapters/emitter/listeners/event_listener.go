package listeners

import "github.com/SeaCloudHub/eventually/domain/event"

// EventListener is a Handler bound to one event of an emitter.
type EventListener interface {
	event.Handler
	EventName() string
}
