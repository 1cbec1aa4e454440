package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/robfig/cron/v3"
)

// Scheduler triggers a refresh on a cron schedule evaluated in a fixed time zone
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	loc      *time.Location
}

// NewScheduler creates a Scheduler firing refreshUC.Trigger on spec, a
// standard 5-field cron expression or descriptor such as "@every 1h".
func NewScheduler(ctx context.Context, refreshUC interfaces.RefreshUseCase, spec string, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid cron schedule", goerr.V("schedule", spec))
	}

	logger := ctxlog.From(ctx).With("component", "scheduler")
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(&cronLogger{logger: logger}),
	)
	c.Schedule(schedule, cron.FuncJob(func() {
		logger.Info("Scheduled refresh")
		refreshUC.Trigger(ctx)
	}))

	return &Scheduler{
		cron:     c,
		schedule: schedule,
		loc:      loc,
	}, nil
}

// Start starts the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done when jobs already
// fired have returned.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Next returns the first activation after t, in the scheduler time zone
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.loc))
}

// cronLogger adapts slog to the cron logger interface
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
