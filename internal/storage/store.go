// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/dayplanner/internal/models"
)

var (
	// ErrNotFound is returned when a row does not exist or is not owned by
	// the caller.
	ErrNotFound = errors.New("not found")

	// ErrProtected is returned when deleting a default category or subcategory.
	ErrProtected = errors.New("default rows cannot be deleted")

	// ErrSessionFinished is returned when logging a set into a session that is
	// no longer in progress.
	ErrSessionFinished = errors.New("workout session is finished")

	// ErrConflict is returned when a unique constraint is violated.
	ErrConflict = errors.New("already exists")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail and GetUserByID return nil, nil when the user is unknown.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	ListUserIDs(ctx context.Context) ([]string, error)
}

// CategoryStore persists categories and subcategories.
type CategoryStore interface {
	// CreateCategories inserts categories and their nested subcategories
	// atomically. IDs and timestamps are assigned when empty.
	CreateCategories(ctx context.Context, categories []models.Category) error

	// ListCategories returns the user's categories by name, each with its
	// subcategories by name.
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)

	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, userID, id string) error

	// CreateSubcategory returns ErrNotFound if the parent category is not
	// owned by the subcategory's user.
	CreateSubcategory(ctx context.Context, sub *models.Subcategory) error
	UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error
	DeleteSubcategory(ctx context.Context, userID, id string) error
}

// TemplateStore persists day templates, their slots and the recurrence map.
type TemplateStore interface {
	// ListDayTemplates returns templates by name with slots (ordered, with
	// subcategory and category) and recurrences.
	ListDayTemplates(ctx context.Context, userID string) ([]models.DayTemplate, error)
	GetDayTemplate(ctx context.Context, userID, id string) (*models.DayTemplate, error)
	CreateDayTemplate(ctx context.Context, tpl *models.DayTemplate) error
	UpdateDayTemplate(ctx context.Context, tpl *models.DayTemplate) error
	DeleteDayTemplate(ctx context.Context, userID, id string) error

	CreateTemplateSlot(ctx context.Context, slot *models.TemplateSlot) error
	UpdateTemplateSlot(ctx context.Context, slot *models.TemplateSlot) error
	DeleteTemplateSlot(ctx context.Context, userID, id string) error
	SetTemplateSlotOrder(ctx context.Context, userID string, update models.OrderUpdate) error

	// ListRecurrences returns the user's recurrences by weekday, each with a
	// template summary (no slots).
	ListRecurrences(ctx context.Context, userID string) ([]models.Recurrence, error)

	// SetRecurrence replaces the assignment of rec.DayOfWeek atomically.
	SetRecurrence(ctx context.Context, rec *models.Recurrence) error
	UnsetRecurrence(ctx context.Context, userID string, dayOfWeek int) error
}

// PlannerStore persists planned days and slots.
type PlannerStore interface {
	// ListPlannedDays returns the days between start and end (inclusive,
	// "YYYY-MM-DD") ordered by date, with slots ordered by Order carrying
	// their subcategory and category, and the template summary.
	ListPlannedDays(ctx context.Context, userID, start, end string) ([]models.PlannedDay, error)

	// MaterializeDays inserts one day per seed in a single transaction and
	// copies the template slots of seeds that resolved a template. Dates that
	// already exist are left untouched.
	MaterializeDays(ctx context.Context, userID string, seeds []models.DaySeed) error

	// ApplyTemplate finds or creates the day, replaces its slots with copies
	// of the template's slots and records the template. ErrNotFound when the
	// template is not owned by the user.
	ApplyTemplate(ctx context.Context, userID, date, templateID string) error

	// ClearDay removes the slots of a day and its template reference. It is a
	// no-op for a date that was never materialized.
	ClearDay(ctx context.Context, userID, date string) error

	// CreatePlannedSlot finds or creates the day of date and adds the slot.
	CreatePlannedSlot(ctx context.Context, date string, slot *models.PlannedSlot) error

	// UpdatePlannedSlot overwrites the slot and detaches it from its template
	// slot. The stored day and creation time are loaded back into slot.
	UpdatePlannedSlot(ctx context.Context, slot *models.PlannedSlot) error
	DeletePlannedSlot(ctx context.Context, userID, id string) error
}

// ExerciseStore persists the global exercise catalog.
type ExerciseStore interface {
	// ListExercises returns exercises by muscle group then name.
	ListExercises(ctx context.Context, filter models.ExerciseFilter) ([]models.Exercise, error)

	// UpsertExercises inserts the exercises, updating rows with the same name.
	UpsertExercises(ctx context.Context, exercises []models.Exercise) error
}

// WorkoutStore persists workout plans, sessions and sets.
type WorkoutStore interface {
	// ListWorkoutPlans returns plans by name with ExerciseCount set.
	ListWorkoutPlans(ctx context.Context, userID string) ([]models.WorkoutPlan, error)

	// GetWorkoutPlan returns the plan with its exercises ordered by Order.
	GetWorkoutPlan(ctx context.Context, userID, id string) (*models.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, plan *models.WorkoutPlan) error
	UpdateWorkoutPlan(ctx context.Context, plan *models.WorkoutPlan) error
	DeleteWorkoutPlan(ctx context.Context, userID, id string) error

	AddPlanExercise(ctx context.Context, pe *models.WorkoutPlanExercise) error
	UpdatePlanExercise(ctx context.Context, pe *models.WorkoutPlanExercise) error
	RemovePlanExercise(ctx context.Context, userID, id string) error
	SetPlanExerciseOrder(ctx context.Context, userID string, update models.OrderUpdate) error

	StartSession(ctx context.Context, session *models.WorkoutSession) error

	// GetSession returns the session with its plan (exercises with exercise)
	// and its sets ordered by CompletedAt.
	GetSession(ctx context.Context, userID, id string) (*models.WorkoutSession, error)

	// FinishSession moves an in-progress session to status. On a session that
	// is already finished only notes are updated. A nil notes keeps them.
	FinishSession(ctx context.Context, userID, id string, status models.SessionStatus, notes *string) error

	ListSessionsByPlan(ctx context.Context, userID, planID string) ([]models.WorkoutSession, error)

	// GetActiveSession returns nil, nil when no session is in progress.
	GetActiveSession(ctx context.Context, userID string) (*models.WorkoutSession, error)

	// ListCompletedSessions returns completed sessions newest first with plan
	// summary and sets, plus the number of sessions matching the filter
	// before Limit is applied.
	ListCompletedSessions(ctx context.Context, userID string, filter models.HistoryFilter) ([]models.WorkoutSession, int, error)

	// LogSet returns ErrNotFound for an unknown session and
	// ErrSessionFinished when the session is no longer in progress.
	LogSet(ctx context.Context, set *models.WorkoutSet) error

	// UpdateSet and DeleteSet only touch sets of in-progress sessions.
	// UpdateSet loads the stored row back into set, ErrNotFound when missing.
	UpdateSet(ctx context.Context, set *models.WorkoutSet) error
	DeleteSet(ctx context.Context, userID, id string) error
}

// Store groups every storage concern behind a single handle.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	UserStore
	CategoryStore
	TemplateStore
	PlannerStore
	ExerciseStore
	WorkoutStore

	// Close releases any resources held by the store.
	Close() error
}
