package middleware

import (
	"github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/basecamp"
)

// ReportPanic recovers and reports panics to Sentry
// when env reports panics.
//
// Otherwise, NoopAdapter returns so panics surface in the terminal.
func ReportPanic(env basecamp.Environment) Adapter {
	if !env.ReportsPanics() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return sh.Handle
}
