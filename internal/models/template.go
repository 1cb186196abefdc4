package models

import "time"

// DayTemplate is a named, reusable set of time slots.
type DayTemplate struct {
	ID        string
	Name      string
	Color     string
	UserID    string
	CreatedAt time.Time

	// Slots are ordered by Order. Populated by ListDayTemplates and GetDayTemplate.
	Slots []TemplateSlot

	// Recurrences lists the weekdays this template is assigned to.
	Recurrences []Recurrence
}

// TemplateSlot is one time slot of a day template.
type TemplateSlot struct {
	ID string

	// StartTime and EndTime are "HH:MM" strings.
	StartTime string
	EndTime   string

	// Order is the display and application order within the template.
	Order int

	SubcategoryID string
	TemplateID    string
	UserID        string
	CreatedAt     time.Time

	Subcategory *Subcategory
}

// Recurrence assigns a day template to one weekday for one user.
// At most one recurrence exists per (UserID, DayOfWeek).
type Recurrence struct {
	ID string

	// DayOfWeek is the ISO weekday minus one: Monday=0 .. Sunday=6.
	DayOfWeek int

	TemplateID string
	UserID     string
	CreatedAt  time.Time

	Template *DayTemplate
}

// OrderUpdate moves one row to a new position.
type OrderUpdate struct {
	ID    string
	Order int
}
