// Package models defines the core domain models for the day planner.
//
// # Planning
//
//   - Category / Subcategory: user-scoped taxonomy of activities
//   - DayTemplate / TemplateSlot: reusable sets of time slots
//   - Recurrence: weekday (Monday=0..Sunday=6) to template assignment
//   - PlannedDay / PlannedSlot: concrete slots for one calendar date
//
// # Workouts
//
//   - Exercise: global exercise catalog
//   - WorkoutPlan / WorkoutPlanExercise: ordered exercise targets
//   - WorkoutSession / WorkoutSet: one execution of a plan and its logged sets
//
// Relationships are expressed with ID strings. Nested pointers and slices
// (Subcategory.Category, DayTemplate.Slots, ...) are only populated by store
// methods that document it.
package models
