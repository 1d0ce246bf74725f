// Package jobs runs the scheduled reminder loops and records their
// outcomes as Prometheus metrics.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Job is one scheduled unit of work.
type Job func(ctx context.Context) error

// Runner schedules jobs on fixed intervals until its context is
// cancelled.
type Runner struct {
	ctx    context.Context
	logger *slog.Logger
}

// New creates a runner bound to ctx.
func New(ctx context.Context, logger *slog.Logger) *Runner {
	return &Runner{ctx: ctx, logger: logger}
}

// Every runs fn on the given interval in its own goroutine. A panic in
// the job is recovered and counted as an error so one bad run cannot
// take the scheduler down.
func (r *Runner) Every(interval time.Duration, name string, fn Job) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-r.ctx.Done():
				return
			case <-t.C:
				start := time.Now()
				if err := r.run(name, fn); err != nil {
					jobErrors.WithLabelValues(name).Inc()
					r.logger.Error("job failed", slog.String("job", name), slog.Any("error", err))
				}
				jobRuns.WithLabelValues(name).Inc()
				jobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			}
		}
	}()
}

func (r *Runner) run(name string, fn Job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in job %s: %v", name, rec)
		}
	}()
	return fn(r.ctx)
}
