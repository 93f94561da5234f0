package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

const FlushTime = 2 * time.Second

type Reporter struct {
	hub *sentrygo.Hub
}

// WithContext uses the request hub installed by the echo middleware, or the
// global hub outside of a request.
func WithContext(c echo.Context) *Reporter {
	hub := sentryecho.GetHubFromContext(c)
	if hub == nil {
		hub = sentrygo.CurrentHub()
	}

	return &Reporter{hub: hub}
}

func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}
	r.hub.CaptureException(err)
}

// Report sends err to the global hub. It fits listeners.Reported.
func Report(err error) {
	if err == nil {
		return
	}
	sentrygo.CaptureException(err)
}
