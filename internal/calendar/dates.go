// Package calendar holds the date arithmetic behind day materialization:
// inclusive date ranges, ISO weekdays, week and month grids.
//
// Dates are "YYYY-MM-DD" strings interpreted in UTC so that day arithmetic
// never crosses a DST boundary.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/mmynk/dayplanner/internal/models"
)

// DateLayout is the layout of every date string handled by the planner.
const DateLayout = "2006-01-02"

// MaxRangeDays caps the number of dates a single range may cover.
const MaxRangeDays = 366

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate formats t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Weekday converts t to the planner week: Monday=0 .. Sunday=6.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ISOWeekday returns the planner weekday (Monday=0) of a date string.
func ISOWeekday(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return Weekday(t), nil
}

// DateRange returns every date from start to end, both inclusive.
func DateRange(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s is before start date %s", end, start)
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > MaxRangeDays {
		return nil, fmt.Errorf("range of %d days exceeds the %d day limit", days, MaxRangeDays)
	}

	dates := make([]string, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates, nil
}

// TemplateForDate returns the template assigned to the date's weekday, or nil.
func TemplateForDate(date string, recurrences []models.Recurrence) (*string, error) {
	weekday, err := ISOWeekday(date)
	if err != nil {
		return nil, err
	}
	for _, r := range recurrences {
		if r.DayOfWeek == weekday {
			id := r.TemplateID
			return &id, nil
		}
	}
	return nil, nil
}

var weekPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// WeekRange returns the Monday and Sunday of an ISO week such as "2026-W06".
func WeekRange(week string) (start, end string, err error) {
	m := weekPattern.FindStringSubmatch(week)
	if m == nil {
		return "", "", fmt.Errorf("invalid week %q: expected YYYY-Www", week)
	}
	year, _ := strconv.Atoi(m[1])
	num, _ := strconv.Atoi(m[2])
	if num < 1 || num > 53 {
		return "", "", fmt.Errorf("invalid week %q: week number out of range", week)
	}

	// January 4th always falls in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -Weekday(jan4)+7*(num-1))

	if y, w := monday.ISOWeek(); y != year || w != num {
		return "", "", fmt.Errorf("invalid week %q: year %d has no week %d", week, year, num)
	}
	return FormatDate(monday), FormatDate(monday.AddDate(0, 0, 6)), nil
}

// WeekOf returns the ISO week string ("2026-W06") containing date.
func WeekOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w), nil
}

// MonthGridRange returns the first and last date of the calendar grid for a
// month such as "2026-02": the month padded to whole Monday..Sunday weeks.
func MonthGridRange(month string) (start, end string, err error) {
	first, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -Weekday(first))
	gridEnd := last.AddDate(0, 0, 6-Weekday(last))
	return FormatDate(gridStart), FormatDate(gridEnd), nil
}
