package models

import "time"

// ModuleWorkout tags subcategories whose slots can carry a workout plan.
const ModuleWorkout = "workout"

// Category groups subcategories of activities (e.g. "Sport", "Lecture").
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string

	// IsDefault marks rows seeded at registration. They cannot be deleted.
	IsDefault bool

	UserID    string
	CreatedAt time.Time

	// Subcategories is populated by ListCategories, ordered by name.
	Subcategories []Subcategory
}

// Subcategory is the leaf activity type referenced by every slot.
type Subcategory struct {
	ID   string
	Name string

	// ModuleType selects a specialised renderer for slots of this
	// subcategory (e.g. ModuleWorkout). Nil for plain activities.
	ModuleType *string

	IsDefault  bool
	CategoryID string
	UserID     string
	CreatedAt  time.Time

	// Category is populated when a subcategory is loaded through a slot.
	Category *Category
}
