package models

import "time"

// PlannedDay is the concrete plan for one calendar date.
type PlannedDay struct {
	ID string

	// Date is "YYYY-MM-DD". Unique per user.
	Date string

	// TemplateID is the template the day was generated from, nil when the day
	// was never assigned one, was cleared, or the template was deleted.
	TemplateID *string

	UserID    string
	CreatedAt time.Time

	Template *DayTemplate
	Slots    []PlannedSlot
}

// PlannedSlot is one time slot of a planned day.
type PlannedSlot struct {
	ID        string
	StartTime string
	EndTime   string
	Order     int

	SubcategoryID string
	PlannedDayID  string

	// TemplateSlotID points back to the template slot the slot was copied
	// from. Cleared when the slot is edited.
	TemplateSlotID *string

	// WorkoutPlanID attaches a workout plan to the slot.
	WorkoutPlanID *string

	UserID    string
	CreatedAt time.Time

	Subcategory *Subcategory
}

// DaySeed describes a day to materialize: its date and the template resolved
// from the recurrence map (nil for an empty day).
type DaySeed struct {
	Date       string
	TemplateID *string
}
