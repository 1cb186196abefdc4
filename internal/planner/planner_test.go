package planner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/dayplanner/internal/calendar"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/storage/sqlite"
)

type fixture struct {
	planner  *Planner
	store    *sqlite.SQLiteStore
	userID   string
	subID    string
	template *models.DayTemplate
}

// setup creates a user with a two-slot template assigned to Mondays.
func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.NewUser("planner@example.com", "Planner", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	cat := &models.Category{Name: "Sport", Icon: "dumbbell", Color: "#ff0000", UserID: user.ID}
	if err := store.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	sub := &models.Subcategory{Name: "Course", CategoryID: cat.ID, UserID: user.ID}
	if err := store.CreateSubcategory(ctx, sub); err != nil {
		t.Fatalf("CreateSubcategory failed: %v", err)
	}

	tpl := &models.DayTemplate{Name: "Workday", Color: "#00ff00", UserID: user.ID}
	if err := store.CreateDayTemplate(ctx, tpl); err != nil {
		t.Fatalf("CreateDayTemplate failed: %v", err)
	}
	for i, tm := range [][2]string{{"08:00", "09:00"}, {"09:00", "10:30"}} {
		slot := &models.TemplateSlot{
			StartTime:     tm[0],
			EndTime:       tm[1],
			Order:         i,
			SubcategoryID: sub.ID,
			TemplateID:    tpl.ID,
			UserID:        user.ID,
		}
		if err := store.CreateTemplateSlot(ctx, slot); err != nil {
			t.Fatalf("CreateTemplateSlot failed: %v", err)
		}
	}
	if err := store.SetRecurrence(ctx, &models.Recurrence{DayOfWeek: 0, TemplateID: tpl.ID, UserID: user.ID}); err != nil {
		t.Fatalf("SetRecurrence failed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		planner:  New(store, logger),
		store:    store,
		userID:   user.ID,
		subID:    sub.ID,
		template: tpl,
	}
}

func TestGetRange(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// 2026-02-02 is a Monday.
	days, err := f.planner.GetRange(ctx, f.userID, "2026-02-02", "2026-02-08")
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(days))
	}

	monday := days[0]
	if monday.Date != "2026-02-02" {
		t.Errorf("Expected first day 2026-02-02, got %s", monday.Date)
	}
	if monday.TemplateID == nil || *monday.TemplateID != f.template.ID {
		t.Errorf("Expected Monday to use template %s, got %v", f.template.ID, monday.TemplateID)
	}
	if len(monday.Slots) != 2 {
		t.Fatalf("Expected 2 slots on Monday, got %d", len(monday.Slots))
	}
	if monday.Slots[0].StartTime != "08:00" || monday.Slots[1].StartTime != "09:00" {
		t.Errorf("Unexpected slot order: %s, %s", monday.Slots[0].StartTime, monday.Slots[1].StartTime)
	}
	for _, s := range monday.Slots {
		if s.TemplateSlotID == nil {
			t.Errorf("Expected slot %s to reference its template slot", s.ID)
		}
	}

	for _, d := range days[1:] {
		if d.TemplateID != nil {
			t.Errorf("Expected %s to have no template, got %s", d.Date, *d.TemplateID)
		}
		if len(d.Slots) != 0 {
			t.Errorf("Expected %s to have no slots, got %d", d.Date, len(d.Slots))
		}
	}
}

func TestGetRangeIdempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.planner.GetRange(ctx, f.userID, "2026-02-02", "2026-02-03")
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}

	// Template edits do not reach days that already exist.
	extra := &models.TemplateSlot{
		StartTime:     "18:00",
		EndTime:       "19:00",
		Order:         2,
		SubcategoryID: f.subID,
		TemplateID:    f.template.ID,
		UserID:        f.userID,
	}
	if err := f.store.CreateTemplateSlot(ctx, extra); err != nil {
		t.Fatalf("CreateTemplateSlot failed: %v", err)
	}

	second, err := f.planner.GetRange(ctx, f.userID, "2026-02-02", "2026-02-03")
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("Expected %d days, got %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("Day %s was recreated: %s != %s", first[i].Date, first[i].ID, second[i].ID)
		}
		if len(first[i].Slots) != len(second[i].Slots) {
			t.Errorf("Day %s slot count changed: %d != %d", first[i].Date, len(first[i].Slots), len(second[i].Slots))
		}
	}

	// The next Monday is materialized after the edit and gets three slots.
	next, err := f.planner.GetRange(ctx, f.userID, "2026-02-09", "2026-02-09")
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}
	if len(next[0].Slots) != 3 {
		t.Errorf("Expected 3 slots on 2026-02-09, got %d", len(next[0].Slots))
	}
}

func TestGetRangeInvalid(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		start, end string
	}{
		{"malformed start", "2026-2-1", "2026-02-08"},
		{"end before start", "2026-02-08", "2026-02-01"},
		{"too long", "2026-01-01", "2027-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.planner.GetRange(ctx, f.userID, tt.start, tt.end)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestGetWeekAndMonth(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	week, err := f.planner.GetWeek(ctx, f.userID, "2026-W06")
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if len(week) != 7 || week[0].Date != "2026-02-02" || week[6].Date != "2026-02-08" {
		t.Errorf("Unexpected week: %d days starting %s", len(week), week[0].Date)
	}

	month, err := f.planner.GetMonth(ctx, f.userID, "2026-02")
	if err != nil {
		t.Fatalf("GetMonth failed: %v", err)
	}
	if len(month)%7 != 0 {
		t.Errorf("Expected whole weeks, got %d days", len(month))
	}
	for _, d := range month {
		wd, err := calendar.ISOWeekday(d.Date)
		if err != nil {
			t.Fatalf("ISOWeekday(%s) failed: %v", d.Date, err)
		}
		if wd == 0 && len(d.Slots) != 2 {
			t.Errorf("Expected Monday %s to have 2 slots, got %d", d.Date, len(d.Slots))
		}
	}

	if _, err := f.planner.GetWeek(ctx, f.userID, "2026-06"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad week, got %v", err)
	}

	// A Sunday belongs to the week that started the Monday before.
	sunday, err := f.planner.GetWeekOf(ctx, f.userID, "2026-02-08")
	if err != nil {
		t.Fatalf("GetWeekOf failed: %v", err)
	}
	if len(sunday) != 7 || sunday[0].Date != "2026-02-02" {
		t.Errorf("Expected the week of 2026-02-02, got %d days starting %s", len(sunday), sunday[0].Date)
	}
	if _, err := f.planner.GetWeekOf(ctx, f.userID, "2026-02-30"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad date, got %v", err)
	}
}

func TestTimeline(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		now      int
		active   int
		statuses []calendar.SlotStatus
	}{
		{"before", 7 * 60, -1, []calendar.SlotStatus{calendar.SlotUpcoming, calendar.SlotUpcoming}},
		{"first slot", 8*60 + 30, 0, []calendar.SlotStatus{calendar.SlotActive, calendar.SlotUpcoming}},
		{"boundary", 9 * 60, 1, []calendar.SlotStatus{calendar.SlotPast, calendar.SlotActive}},
		{"after", 12 * 60, -1, []calendar.SlotStatus{calendar.SlotPast, calendar.SlotPast}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, err := f.planner.Timeline(ctx, f.userID, "2026-02-02", tt.now)
			if err != nil {
				t.Fatalf("Timeline failed: %v", err)
			}
			if tl.ActiveIndex != tt.active {
				t.Errorf("Expected active index %d, got %d", tt.active, tl.ActiveIndex)
			}
			if len(tl.Slots) != len(tt.statuses) {
				t.Fatalf("Expected %d slots, got %d", len(tt.statuses), len(tl.Slots))
			}
			for i, want := range tt.statuses {
				if tl.Slots[i].Status != want {
					t.Errorf("Slot %d: expected %s, got %s", i, want, tl.Slots[i].Status)
				}
			}
		})
	}

	tl, err := f.planner.Timeline(ctx, f.userID, "2026-02-02", 8*60+30)
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if tl.Slots[0].Progress != 50 {
		t.Errorf("Expected progress 50, got %v", tl.Slots[0].Progress)
	}

	if _, err := f.planner.Timeline(ctx, f.userID, "2026-02-02", 24*60); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for minute 1440, got %v", err)
	}
}

func TestApplyTemplateAndClearDay(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	if err := f.planner.ApplyTemplate(ctx, f.userID, "2026-02-03", f.template.ID); err != nil {
		t.Fatalf("ApplyTemplate failed: %v", err)
	}
	days, err := f.planner.GetRange(ctx, f.userID, "2026-02-03", "2026-02-03")
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}
	if len(days[0].Slots) != 2 {
		t.Errorf("Expected 2 slots after ApplyTemplate, got %d", len(days[0].Slots))
	}

	if err := f.planner.ClearDay(ctx, f.userID, "2026-02-03"); err != nil {
		t.Fatalf("ClearDay failed: %v", err)
	}
	days, err = f.planner.GetRange(ctx, f.userID, "2026-02-03", "2026-02-03")
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}
	if len(days[0].Slots) != 0 || days[0].TemplateID != nil {
		t.Errorf("Expected cleared day, got %d slots and template %v", len(days[0].Slots), days[0].TemplateID)
	}

	if err := f.planner.ApplyTemplate(ctx, f.userID, "03/02/2026", f.template.ID); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestMaterializeAhead(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	from := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	if err := f.planner.MaterializeAhead(ctx, f.userID, from, 14); err != nil {
		t.Fatalf("MaterializeAhead failed: %v", err)
	}

	days, err := f.store.ListPlannedDays(ctx, f.userID, "2026-02-01", "2026-02-28")
	if err != nil {
		t.Fatalf("ListPlannedDays failed: %v", err)
	}
	if len(days) != 14 {
		t.Errorf("Expected 14 materialized days, got %d", len(days))
	}
}
