// Package scheduler runs background jobs on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// UserLister enumerates the users to materialize days for.
type UserLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// Materializer creates the planned days of a user for an upcoming window.
type Materializer interface {
	MaterializeAhead(ctx context.Context, userID string, from time.Time, days int) error
}

// Prematerializer fills the next days of every user's planner so that they
// are ready before anyone opens them.
type Prematerializer struct {
	users   UserLister
	planner Materializer
	days    int
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time

	cron *cron.Cron
}

func NewPrematerializer(users UserLister, planner Materializer, days int, logger *slog.Logger) *Prematerializer {
	return &Prematerializer{
		users:   users,
		planner: planner,
		days:    days,
		timeout: 5 * time.Minute,
		logger:  logger,
		now:     time.Now,
	}
}

// Start schedules the job with a standard five-field cron spec or a
// descriptor such as "@daily". Overlapping runs are skipped.
func (p *Prematerializer) Start(spec string) error {
	logger := cronLogger{p.logger}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(spec, p.run); err != nil {
		return fmt.Errorf("failed to schedule prematerialization %q: %w", spec, err)
	}
	p.cron = c
	c.Start()
	p.logger.Info("Prematerialization scheduled", "spec", spec, "days", p.days)
	return nil
}

// Stop stops the schedule and waits for a running job to finish or ctx to
// expire.
func (p *Prematerializer) Stop(ctx context.Context) {
	if p.cron == nil {
		return
	}
	select {
	case <-p.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (p *Prematerializer) run() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := p.RunOnce(ctx); err != nil {
		p.logger.Error("Prematerialization failed", "error", err)
	}
}

// RunOnce materializes the window for every user. A failing user does not
// stop the others; their errors are joined.
func (p *Prematerializer) RunOnce(ctx context.Context) error {
	start := time.Now()
	ids, err := p.users.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	from := p.now()
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := p.planner.MaterializeAhead(ctx, id, from, p.days); err != nil {
			p.logger.Warn("MaterializeAhead failed", "user_id", id, "error", err)
			errs = append(errs, fmt.Errorf("user %s: %w", id, err))
		}
	}

	p.logger.Info("Prematerialization done",
		"users", len(ids),
		"failed", len(errs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return errors.Join(errs...)
}

// cronLogger adapts slog to the cron logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
