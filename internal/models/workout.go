package models

import "time"

// Exercise is an entry of the global exercise catalog.
type Exercise struct {
	ID          string
	Name        string
	MuscleGroup string

	// Equipment is derived from the name (see workout.DeriveEquipment).
	Equipment string

	Description string
	ImageURL    *string
}

// ExerciseFilter narrows ListExercises. Empty fields are ignored.
type ExerciseFilter struct {
	MuscleGroup string
	Equipment   string
	Search      string
}

// WorkoutPlan is an ordered list of exercises with targets.
type WorkoutPlan struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time

	// Exercises are ordered by Order. Populated by GetWorkoutPlan.
	Exercises []WorkoutPlanExercise

	// ExerciseCount is populated by ListWorkoutPlans.
	ExerciseCount int
}

// WorkoutPlanExercise is one exercise of a plan with its targets.
type WorkoutPlanExercise struct {
	ID                 string
	Order              int
	PlannedSets        int
	PlannedReps        int
	PlannedWeight      float64
	PlannedRestSeconds int

	ExerciseID    string
	WorkoutPlanID string
	UserID        string

	Exercise *Exercise
}

// SessionStatus is the lifecycle state of a workout session.
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

// WorkoutSession is one execution of a workout plan.
type WorkoutSession struct {
	ID     string
	Status SessionStatus

	StartedAt   time.Time
	CompletedAt *time.Time
	Notes       *string

	WorkoutPlanID string

	// PlannedSlotID is the slot the session was started from, if any.
	PlannedSlotID *string

	UserID string

	WorkoutPlan *WorkoutPlan

	// Sets are ordered by CompletedAt.
	Sets []WorkoutSet
}

// WorkoutSet is one logged set.
type WorkoutSet struct {
	ID        string
	SetNumber int
	Reps      int
	Weight    float64

	// Feeling is a 1-5 subjective exertion rating.
	Feeling int

	ExerciseID string

	// WorkoutPlanExerciseID is empty once the plan exercise was removed.
	WorkoutPlanExerciseID string

	SessionID   string
	UserID      string
	CompletedAt time.Time

	Exercise *Exercise
}

// HistoryFilter narrows ListCompletedSessions.
type HistoryFilter struct {
	// ExerciseID keeps only sessions with at least one set of that exercise.
	ExerciseID string

	// Limit caps the number of sessions returned; 0 means no limit.
	Limit int
}
