package errs

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs err at error level and reports it to Sentry when a Sentry
// client has been initialized. It is the single sink for run-level failures.
func Handle(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	logger.Error(msg, "error", err)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub = hub.Clone()
	if hub.Client() == nil {
		return
	}

	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		if gErr := goerr.Unwrap(err); gErr != nil {
			values := sentry.Context{}
			for key, value := range gErr.Values() {
				values[key] = fmt.Sprint(value)
			}
			scope.SetContext("goerr", values)
		}
	})

	if evID := hub.CaptureException(err); evID != nil {
		logger.Info("Error reported to Sentry", "event_id", *evID)
	}
}
