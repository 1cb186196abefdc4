package planner

import (
	"context"
	"fmt"

	"github.com/mmynk/dayplanner/internal/calendar"
	"github.com/mmynk/dayplanner/internal/models"
)

// TimelineSlot is a planned slot placed on the clock.
type TimelineSlot struct {
	Slot     models.PlannedSlot
	Status   calendar.SlotStatus
	Progress float64
}

// Timeline is one day seen at a given minute.
type Timeline struct {
	Day   models.PlannedDay
	Slots []TimelineSlot

	// ActiveIndex is the index in Slots of the active slot, -1 when none.
	ActiveIndex int
}

// Timeline returns the day of date with each slot's status at nowMinutes
// (minutes since midnight). The day is materialized if needed.
func (p *Planner) Timeline(ctx context.Context, userID, date string, nowMinutes int) (*Timeline, error) {
	if nowMinutes < 0 || nowMinutes >= 24*60 {
		return nil, fmt.Errorf("%w: minute of day %d out of range", ErrInvalidInput, nowMinutes)
	}

	days, err := p.GetRange(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}
	if len(days) != 1 {
		return nil, fmt.Errorf("expected one planned day for %s, got %d", date, len(days))
	}

	tl := &Timeline{Day: days[0], ActiveIndex: -1}
	for _, slot := range days[0].Slots {
		start, err := calendar.TimeToMinutes(slot.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.ID, err)
		}
		end, err := calendar.TimeToMinutes(slot.EndTime)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.ID, err)
		}

		status := calendar.StatusAt(start, end, nowMinutes)
		if status == calendar.SlotActive && tl.ActiveIndex < 0 {
			tl.ActiveIndex = len(tl.Slots)
		}
		tl.Slots = append(tl.Slots, TimelineSlot{
			Slot:     slot,
			Status:   status,
			Progress: calendar.ProgressAt(start, end, nowMinutes),
		})
	}
	return tl, nil
}
