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

const sessionColumns = "s.id, s.status, s.started_at, s.completed_at, s.notes, s.workout_plan_id, s.planned_slot_id, s.user_id"

func scanSession(row scanner, extra ...any) (*models.WorkoutSession, error) {
	var (
		session              models.WorkoutSession
		status               string
		startedAt            int64
		completedAt          sql.NullInt64
		notes, plannedSlotID sql.NullString
	)
	dest := append([]any{
		&session.ID, &status, &startedAt, &completedAt, &notes, &session.WorkoutPlanID, &plannedSlotID, &session.UserID,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	session.Status = models.SessionStatus(status)
	session.StartedAt = fromMillis(startedAt)
	if completedAt.Valid {
		t := fromMillis(completedAt.Int64)
		session.CompletedAt = &t
	}
	session.Notes = stringPtr(notes)
	session.PlannedSlotID = stringPtr(plannedSlotID)
	return &session, nil
}

// StartSession opens an in-progress session of a plan.
func (s *SQLiteStore) StartSession(ctx context.Context, session *models.WorkoutSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	session.Status = models.SessionInProgress

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireOwned(ctx, tx, "workout_plan", session.WorkoutPlanID, session.UserID); err != nil {
			return err
		}
		if session.PlannedSlotID != nil {
			if err := requireOwned(ctx, tx, "planned_slot", *session.PlannedSlotID, session.UserID); err != nil {
				return err
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO workout_session (id, status, started_at, notes, workout_plan_id, planned_slot_id, user_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, session.ID, string(session.Status), toMillis(session.StartedAt), nullableString(session.Notes),
			session.WorkoutPlanID, nullableString(session.PlannedSlotID), session.UserID)
		if err != nil {
			return fmt.Errorf("failed to insert workout session: %w", mapConstraint(err))
		}
		return nil
	})
}

// GetSession returns a session with its plan and logged sets.
func (s *SQLiteStore) GetSession(ctx context.Context, userID, id string) (*models.WorkoutSession, error) {
	session, err := scanSession(s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM workout_session s WHERE s.id = ? AND s.user_id = ?",
		id, userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout session %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout session: %w", err)
	}

	plan, err := getWorkoutPlan(ctx, s.db, userID, session.WorkoutPlanID)
	if err != nil {
		return nil, err
	}
	session.WorkoutPlan = plan

	sets, err := s.querySets(ctx, userID, []string{session.ID})
	if err != nil {
		return nil, err
	}
	session.Sets = sets[session.ID]

	return session, nil
}

// FinishSession completes or abandons an in-progress session.
func (s *SQLiteStore) FinishSession(ctx context.Context, userID, id string, status models.SessionStatus, notes *string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE workout_session
			SET status = ?, completed_at = ?, notes = COALESCE(?, notes)
			WHERE id = ? AND user_id = ? AND status = ?
		`, string(status), toMillis(time.Now()), nullableString(notes), id, userID, string(models.SessionInProgress))
		if err != nil {
			return fmt.Errorf("failed to finish workout session: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to finish workout session: %w", err)
		}
		if n > 0 || notes == nil {
			return nil
		}

		// Already finished: notes stay editable.
		if _, err := tx.ExecContext(ctx,
			"UPDATE workout_session SET notes = ? WHERE id = ? AND user_id = ?", *notes, id, userID,
		); err != nil {
			return fmt.Errorf("failed to update session notes: %w", err)
		}
		return nil
	})
}

// ListSessionsByPlan returns the sessions of a plan, newest first.
func (s *SQLiteStore) ListSessionsByPlan(ctx context.Context, userID, planID string) ([]models.WorkoutSession, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM workout_session s WHERE s.workout_plan_id = ? AND s.user_id = ? ORDER BY s.started_at DESC",
		planID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout session: %w", err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workout sessions: %w", err)
	}

	return sessions, nil
}

// GetActiveSession returns the user's in-progress session, if any.
func (s *SQLiteStore) GetActiveSession(ctx context.Context, userID string) (*models.WorkoutSession, error) {
	session, err := scanSession(s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM workout_session s WHERE s.user_id = ? AND s.status = ? ORDER BY s.started_at DESC LIMIT 1",
		userID, string(models.SessionInProgress),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return session, nil
}

// ListCompletedSessions returns completed sessions, newest first, with a
// plan summary and their sets.
func (s *SQLiteStore) ListCompletedSessions(ctx context.Context, userID string, filter models.HistoryFilter) ([]models.WorkoutSession, int, error) {
	where := "s.user_id = ? AND s.status = ?"
	args := []any{userID, string(models.SessionCompleted)}
	if filter.ExerciseID != "" {
		where += " AND EXISTS (SELECT 1 FROM workout_set ws WHERE ws.session_id = s.id AND ws.exercise_id = ?)"
		args = append(args, filter.ExerciseID)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM workout_session s WHERE "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workout sessions: %w", err)
	}

	query := `
		SELECT ` + sessionColumns + `, p.name
		FROM workout_session s
		JOIN workout_plan p ON p.id = s.workout_plan_id
		WHERE ` + where + `
		ORDER BY s.started_at DESC`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workout history: %w", err)
	}
	defer rows.Close()

	var (
		sessions []models.WorkoutSession
		ids      []string
	)
	for rows.Next() {
		var planName string
		session, err := scanSession(rows, &planName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan workout session: %w", err)
		}
		session.WorkoutPlan = &models.WorkoutPlan{ID: session.WorkoutPlanID, Name: planName, UserID: userID}
		sessions = append(sessions, *session)
		ids = append(ids, session.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate workout history: %w", err)
	}
	rows.Close()

	if len(sessions) == 0 {
		return nil, total, nil
	}

	sets, err := s.querySets(ctx, userID, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range sessions {
		sessions[i].Sets = sets[sessions[i].ID]
	}

	return sessions, total, nil
}

// querySets loads the sets of the given sessions, with their exercise,
// grouped by session and ordered by CompletedAt.
func (s *SQLiteStore) querySets(ctx context.Context, userID string, sessionIDs []string) (map[string][]models.WorkoutSet, error) {
	args := make([]any, 0, len(sessionIDs)+1)
	args = append(args, userID)
	for _, id := range sessionIDs {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT ws.id, ws.set_number, ws.reps, ws.weight, ws.feeling, ws.exercise_id,
			ws.workout_plan_exercise_id, ws.session_id, ws.user_id, ws.completed_at,
			e.id, e.name, e.muscle_group, e.equipment, e.description, e.image_url
		FROM workout_set ws
		JOIN exercise e ON e.id = ws.exercise_id
		WHERE ws.user_id = ? AND ws.session_id IN (`+placeholders(len(sessionIDs))+`)
		ORDER BY ws.completed_at, ws.set_number`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout sets: %w", err)
	}
	defer rows.Close()

	sets := make(map[string][]models.WorkoutSet)
	for rows.Next() {
		var (
			set          models.WorkoutSet
			planExercise sql.NullString
			completedAt  int64
		)
		ex, err := scanExercise(rows,
			&set.ID, &set.SetNumber, &set.Reps, &set.Weight, &set.Feeling, &set.ExerciseID,
			&planExercise, &set.SessionID, &set.UserID, &completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout set: %w", err)
		}
		set.WorkoutPlanExerciseID = planExercise.String
		set.CompletedAt = fromMillis(completedAt)
		set.Exercise = ex
		sets[set.SessionID] = append(sets[set.SessionID], set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workout sets: %w", err)
	}

	return sets, nil
}

// LogSet records a set in an in-progress session.
func (s *SQLiteStore) LogSet(ctx context.Context, set *models.WorkoutSet) error {
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	if set.CompletedAt.IsZero() {
		set.CompletedAt = time.Now()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var status string
		err := tx.QueryRowContext(ctx,
			"SELECT status FROM workout_session WHERE id = ? AND user_id = ?", set.SessionID, set.UserID,
		).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("workout session %s: %w", set.SessionID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to load workout session: %w", err)
		}
		if models.SessionStatus(status) != models.SessionInProgress {
			return storage.ErrSessionFinished
		}

		var planExercise sql.NullString
		if set.WorkoutPlanExerciseID != "" {
			if err := requireOwned(ctx, tx, "workout_plan_exercise", set.WorkoutPlanExerciseID, set.UserID); err != nil {
				return err
			}
			planExercise = sql.NullString{String: set.WorkoutPlanExerciseID, Valid: true}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO workout_set (id, set_number, reps, weight, feeling, exercise_id,
				workout_plan_exercise_id, session_id, user_id, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, set.ID, set.SetNumber, set.Reps, set.Weight, set.Feeling, set.ExerciseID,
			planExercise, set.SessionID, set.UserID, toMillis(set.CompletedAt))
		if err != nil {
			return fmt.Errorf("failed to insert workout set: %w", mapConstraint(err))
		}
		return nil
	})
}

// UpdateSet corrects a set of an in-progress session and reloads the
// stored row into set. Sets of finished sessions are left unchanged.
func (s *SQLiteStore) UpdateSet(ctx context.Context, set *models.WorkoutSet) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE workout_set SET reps = ?, weight = ?, feeling = ?
			WHERE id = ? AND user_id = ?
				AND session_id IN (SELECT id FROM workout_session WHERE status = ?)
		`, set.Reps, set.Weight, set.Feeling, set.ID, set.UserID, string(models.SessionInProgress))
		if err != nil {
			return fmt.Errorf("failed to update workout set: %w", err)
		}

		var (
			planExercise sql.NullString
			completedAt  int64
		)
		err = tx.QueryRowContext(ctx, `
			SELECT set_number, reps, weight, feeling, exercise_id, workout_plan_exercise_id, session_id, completed_at
			FROM workout_set WHERE id = ? AND user_id = ?
		`, set.ID, set.UserID).Scan(
			&set.SetNumber, &set.Reps, &set.Weight, &set.Feeling, &set.ExerciseID,
			&planExercise, &set.SessionID, &completedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("workout set %s: %w", set.ID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to reload workout set: %w", err)
		}
		set.WorkoutPlanExerciseID = planExercise.String
		set.CompletedAt = fromMillis(completedAt)
		return nil
	})
}

// DeleteSet deletes a set of an in-progress session.
func (s *SQLiteStore) DeleteSet(ctx context.Context, userID, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM workout_set
		WHERE id = ? AND user_id = ?
			AND session_id IN (SELECT id FROM workout_session WHERE status = ?)
	`, id, userID, string(models.SessionInProgress))
	if err != nil {
		return fmt.Errorf("failed to delete workout set: %w", err)
	}
	return nil
}
