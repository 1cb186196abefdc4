package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/storage"
)

// ListWorkoutPlans returns the user's plans with their exercise count.
func (s *SQLiteStore) ListWorkoutPlans(ctx context.Context, userID string) ([]models.WorkoutPlan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.user_id, p.created_at, COUNT(pe.id)
		FROM workout_plan p
		LEFT JOIN workout_plan_exercise pe ON pe.workout_plan_id = p.id
		WHERE p.user_id = ?
		GROUP BY p.id
		ORDER BY p.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout plans: %w", err)
	}
	defer rows.Close()

	var plans []models.WorkoutPlan
	for rows.Next() {
		var (
			plan      models.WorkoutPlan
			createdAt int64
		)
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.UserID, &createdAt, &plan.ExerciseCount); err != nil {
			return nil, fmt.Errorf("failed to scan workout plan: %w", err)
		}
		plan.CreatedAt = fromMillis(createdAt)
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workout plans: %w", err)
	}

	return plans, nil
}

// GetWorkoutPlan returns a plan with its exercises in order.
func (s *SQLiteStore) GetWorkoutPlan(ctx context.Context, userID, id string) (*models.WorkoutPlan, error) {
	return getWorkoutPlan(ctx, s.db, userID, id)
}

func getWorkoutPlan(ctx context.Context, q querier, userID, id string) (*models.WorkoutPlan, error) {
	var (
		plan      models.WorkoutPlan
		createdAt int64
	)
	err := q.QueryRowContext(ctx,
		"SELECT id, name, user_id, created_at FROM workout_plan WHERE id = ? AND user_id = ?",
		id, userID,
	).Scan(&plan.ID, &plan.Name, &plan.UserID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout plan %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout plan: %w", err)
	}
	plan.CreatedAt = fromMillis(createdAt)

	rows, err := q.QueryContext(ctx, `
		SELECT pe.id, pe.sort_order, pe.planned_sets, pe.planned_reps, pe.planned_weight, pe.planned_rest_seconds,
			pe.exercise_id, pe.workout_plan_id, pe.user_id,
			e.id, e.name, e.muscle_group, e.equipment, e.description, e.image_url
		FROM workout_plan_exercise pe
		JOIN exercise e ON e.id = pe.exercise_id
		WHERE pe.workout_plan_id = ? AND pe.user_id = ?
		ORDER BY pe.sort_order
	`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pe models.WorkoutPlanExercise
		ex, err := scanExercise(rows,
			&pe.ID, &pe.Order, &pe.PlannedSets, &pe.PlannedReps, &pe.PlannedWeight, &pe.PlannedRestSeconds,
			&pe.ExerciseID, &pe.WorkoutPlanID, &pe.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan exercise: %w", err)
		}
		pe.Exercise = ex
		plan.Exercises = append(plan.Exercises, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plan exercises: %w", err)
	}
	plan.ExerciseCount = len(plan.Exercises)

	return &plan, nil
}

// CreateWorkoutPlan inserts an empty plan.
func (s *SQLiteStore) CreateWorkoutPlan(ctx context.Context, plan *models.WorkoutPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO workout_plan (id, name, user_id, created_at) VALUES (?, ?, ?, ?)",
		plan.ID, plan.Name, plan.UserID, toMillis(plan.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert workout plan: %w", mapConstraint(err))
	}
	return nil
}

// UpdateWorkoutPlan renames a plan.
func (s *SQLiteStore) UpdateWorkoutPlan(ctx context.Context, plan *models.WorkoutPlan) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE workout_plan SET name = ? WHERE id = ? AND user_id = ?",
		plan.Name, plan.ID, plan.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update workout plan: %w", err)
	}
	return nil
}

// DeleteWorkoutPlan deletes a plan with its exercises and sessions.
func (s *SQLiteStore) DeleteWorkoutPlan(ctx context.Context, userID, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM workout_plan WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to delete workout plan: %w", err)
	}
	return nil
}

// AddPlanExercise appends an exercise to a plan owned by the same user.
func (s *SQLiteStore) AddPlanExercise(ctx context.Context, pe *models.WorkoutPlanExercise) error {
	if pe.ID == "" {
		pe.ID = uuid.New().String()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireOwned(ctx, tx, "workout_plan", pe.WorkoutPlanID, pe.UserID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO workout_plan_exercise (id, sort_order, planned_sets, planned_reps, planned_weight,
				planned_rest_seconds, exercise_id, workout_plan_id, user_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, pe.ID, pe.Order, pe.PlannedSets, pe.PlannedReps, pe.PlannedWeight, pe.PlannedRestSeconds,
			pe.ExerciseID, pe.WorkoutPlanID, pe.UserID, toMillis(time.Now()))
		if err != nil {
			return fmt.Errorf("failed to insert plan exercise: %w", mapConstraint(err))
		}
		return nil
	})
}

// UpdatePlanExercise overwrites the targets of a plan exercise.
func (s *SQLiteStore) UpdatePlanExercise(ctx context.Context, pe *models.WorkoutPlanExercise) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE workout_plan_exercise
		SET planned_sets = ?, planned_reps = ?, planned_weight = ?, planned_rest_seconds = ?
		WHERE id = ? AND user_id = ?
	`, pe.PlannedSets, pe.PlannedReps, pe.PlannedWeight, pe.PlannedRestSeconds, pe.ID, pe.UserID)
	if err != nil {
		return fmt.Errorf("failed to update plan exercise: %w", err)
	}
	return nil
}

// RemovePlanExercise removes an exercise from its plan. Logged sets keep
// their history without the plan reference.
func (s *SQLiteStore) RemovePlanExercise(ctx context.Context, userID, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM workout_plan_exercise WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to remove plan exercise: %w", err)
	}
	return nil
}

// SetPlanExerciseOrder moves one plan exercise.
func (s *SQLiteStore) SetPlanExerciseOrder(ctx context.Context, userID string, update models.OrderUpdate) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE workout_plan_exercise SET sort_order = ? WHERE id = ? AND user_id = ?",
		update.Order, update.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to reorder plan exercise: %w", err)
	}
	return nil
}
