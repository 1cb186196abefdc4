package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotStatus describes where a slot sits relative to the current time.
type SlotStatus string

const (
	SlotPast     SlotStatus = "past"
	SlotActive   SlotStatus = "active"
	SlotUpcoming SlotStatus = "upcoming"
)

// TimeToMinutes converts "HH:MM" to minutes since midnight.
func TimeToMinutes(clock string) (int, error) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || len(m) != 2 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", clock)
	}
	return hours*60 + minutes, nil
}

// ValidateSlotTimes checks both clocks and that start is strictly before end.
func ValidateSlotTimes(start, end string) error {
	from, err := TimeToMinutes(start)
	if err != nil {
		return err
	}
	to, err := TimeToMinutes(end)
	if err != nil {
		return err
	}
	if from >= to {
		return fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return nil
}

// StatusAt returns the status of the slot [start, end) at now (minutes since midnight).
func StatusAt(start, end, now int) SlotStatus {
	switch {
	case now >= end:
		return SlotPast
	case now >= start:
		return SlotActive
	default:
		return SlotUpcoming
	}
}

// ProgressAt returns how far now is into [start, end), clamped to 0..100.
// Slots with a non-positive duration report 0.
func ProgressAt(start, end, now int) float64 {
	duration := end - start
	if duration <= 0 {
		return 0
	}
	pct := float64(now-start) / float64(duration) * 100
	return max(0, min(100, pct))
}
