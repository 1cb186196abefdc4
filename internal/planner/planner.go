// Package planner materializes calendar days from the recurrence map and
// applies day templates.
//
// A date has no planned day until it is first read. Reading a range creates
// every missing day from the template assigned to its weekday and copies the
// template's slots. Existing days are never regenerated, so reads are
// idempotent and later template edits only affect days not yet materialized.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/dayplanner/internal/calendar"
	"github.com/mmynk/dayplanner/internal/models"
)

// ErrInvalidInput wraps malformed dates, weeks, months and ranges.
var ErrInvalidInput = errors.New("invalid input")

// Store is the persistence the planner needs.
type Store interface {
	ListPlannedDays(ctx context.Context, userID, start, end string) ([]models.PlannedDay, error)
	ListRecurrences(ctx context.Context, userID string) ([]models.Recurrence, error)
	MaterializeDays(ctx context.Context, userID string, seeds []models.DaySeed) error
	ApplyTemplate(ctx context.Context, userID, date, templateID string) error
	ClearDay(ctx context.Context, userID, date string) error
}

// Planner resolves planned days for a user.
type Planner struct {
	store  Store
	logger *slog.Logger
}

// New creates a planner backed by store.
func New(store Store, logger *slog.Logger) *Planner {
	return &Planner{store: store, logger: logger}
}

// GetRange returns one planned day per date of [start, end], materializing
// missing dates first. Days are ordered by date.
func (p *Planner) GetRange(ctx context.Context, userID, start, end string) ([]models.PlannedDay, error) {
	dates, err := calendar.DateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	days, err := p.store.ListPlannedDays(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(days))
	for _, d := range days {
		existing[d.Date] = true
	}
	var missing []string
	for _, d := range dates {
		if !existing[d] {
			missing = append(missing, d)
		}
	}
	if len(missing) == 0 {
		return days, nil
	}

	recurrences, err := p.store.ListRecurrences(ctx, userID)
	if err != nil {
		return nil, err
	}

	seeds := make([]models.DaySeed, 0, len(missing))
	for _, date := range missing {
		templateID, err := calendar.TemplateForDate(date, recurrences)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		seeds = append(seeds, models.DaySeed{Date: date, TemplateID: templateID})
	}

	if err := p.store.MaterializeDays(ctx, userID, seeds); err != nil {
		return nil, fmt.Errorf("failed to materialize days: %w", err)
	}
	p.logger.Debug("Materialized planned days", "user_id", userID, "count", len(seeds), "start", start, "end", end)

	return p.store.ListPlannedDays(ctx, userID, start, end)
}

// GetWeek returns the seven days of an ISO week such as "2026-W06".
func (p *Planner) GetWeek(ctx context.Context, userID, week string) ([]models.PlannedDay, error) {
	start, end, err := calendar.WeekRange(week)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return p.GetRange(ctx, userID, start, end)
}

// GetWeekOf returns the ISO week containing date.
func (p *Planner) GetWeekOf(ctx context.Context, userID, date string) ([]models.PlannedDay, error) {
	week, err := calendar.WeekOf(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return p.GetWeek(ctx, userID, week)
}

// GetMonth returns the month grid of a month such as "2026-02", padded to
// whole Monday..Sunday weeks.
func (p *Planner) GetMonth(ctx context.Context, userID, month string) ([]models.PlannedDay, error) {
	start, end, err := calendar.MonthGridRange(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return p.GetRange(ctx, userID, start, end)
}

// ApplyTemplate overwrites the slots of date with those of the template.
func (p *Planner) ApplyTemplate(ctx context.Context, userID, date, templateID string) error {
	if _, err := calendar.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return p.store.ApplyTemplate(ctx, userID, date, templateID)
}

// ClearDay removes every slot of date and its template reference.
func (p *Planner) ClearDay(ctx context.Context, userID, date string) error {
	if _, err := calendar.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return p.store.ClearDay(ctx, userID, date)
}

// MaterializeAhead materializes the days from `from` to `from + days - 1`.
func (p *Planner) MaterializeAhead(ctx context.Context, userID string, from time.Time, days int) error {
	if days <= 0 {
		return nil
	}
	start := calendar.FormatDate(from)
	end := calendar.FormatDate(from.AddDate(0, 0, days-1))
	_, err := p.GetRange(ctx, userID, start, end)
	return err
}
