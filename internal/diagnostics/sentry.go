// Package diagnostics forwards search failures to Sentry when a DSN is configured.
package diagnostics

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

var enabled atomic.Bool

// Init configures the Sentry client. An empty DSN leaves reporting disabled.
func Init(dsn, release string) error {
	if dsn == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: release,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	enabled.Store(true)
	return nil
}

// Enabled reports whether Init configured a client.
func Enabled() bool {
	return enabled.Load()
}

// CaptureSearchError reports a failed search. It is a no-op when reporting is disabled.
func CaptureSearchError(err error, query string) {
	if err == nil || !enabled.Load() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "search")
		scope.SetExtra("query", query)
		sentry.CaptureException(err)
	})
}

// Flush waits for buffered events to be delivered.
func Flush(timeout time.Duration) error {
	if !enabled.Load() {
		return nil
	}
	if !sentry.Flush(timeout) {
		return errors.New("sentry flush timed out")
	}
	return nil
}
