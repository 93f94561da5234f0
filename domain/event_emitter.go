package domain

import "github.com/SeaCloudHub/eventually/domain/event"

type EventEmitter interface {
	On(name string, h event.Handler) (*event.Callable, error)
	Once(name string, h event.Handler) (*event.Callable, error)
	Emit(name string, payload ...any) error
	Listeners(name string) []*event.Callable
	RemoveListener(name string, h event.Handler)
	RemoveAllListeners(name string)
	NumListeners() int
}
