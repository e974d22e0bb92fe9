// Package monitoring forwards operator-relevant events to Sentry. Without a DSN
// every call is a no-op.
package monitoring

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter surfaces events that require a human to look at them.
type Reporter interface {
	ReportCritical(err error, tags map[string]string)
	Message(msg string)
}

type sentryReporter struct{}

func NewReporter() Reporter {
	return &sentryReporter{}
}

func Initialize(dsn, environment string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
}

func Flush() {
	sentry.Flush(2 * time.Second)
}

func (r *sentryReporter) ReportCritical(err error, tags map[string]string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelFatal)
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

func (r *sentryReporter) Message(msg string) {
	sentry.CaptureMessage(msg)
}
