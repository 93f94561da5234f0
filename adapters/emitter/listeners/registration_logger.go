package listeners

import (
	"github.com/SeaCloudHub/eventually/domain/event"
	"go.uber.org/zap"
)

// RegistrationLogger observes listener_added and logs every new listener.
type RegistrationLogger struct {
	logger *zap.SugaredLogger
}

var _ EventListener = (*RegistrationLogger)(nil)

func NewRegistrationLogger(logger *zap.SugaredLogger) *RegistrationLogger {
	return &RegistrationLogger{logger: logger}
}

func (l *RegistrationLogger) EventName() string {
	return event.ListenerAdded
}

func (l *RegistrationLogger) Arity() int {
	return 1
}

func (l *RegistrationLogger) Invoke(args ...any) error {
	if len(args) == 0 {
		return nil
	}

	cbk, ok := args[0].(*event.Callable)
	if !ok {
		return nil
	}

	l.logger.Infow("listener added",
		zap.Stringer("listener_id", cbk.ID()),
		zap.Int("arity", cbk.Arity()),
		zap.Stringer("availability", cbk.Availability()),
	)

	return nil
}
