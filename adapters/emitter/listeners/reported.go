package listeners

import "github.com/SeaCloudHub/eventually/domain/event"

// ReportedHandler hands every error of the wrapped handler to a reporter
// and then returns it unchanged, so dispatch still stops on it.
type ReportedHandler struct {
	inner  event.Handler
	report func(error)
}

func Reported(h event.Handler, report func(error)) *ReportedHandler {
	return &ReportedHandler{inner: h, report: report}
}

func (h *ReportedHandler) Arity() int {
	return h.inner.Arity()
}

func (h *ReportedHandler) Invoke(args ...any) error {
	err := h.inner.Invoke(args...)
	if err != nil && h.report != nil {
		h.report(err)
	}

	return err
}

// Unwrap returns the wrapped handler.
func (h *ReportedHandler) Unwrap() event.Handler {
	return h.inner
}
