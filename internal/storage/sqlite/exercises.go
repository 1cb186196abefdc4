package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/dayplanner/internal/models"
)

// ListExercises returns the catalog filtered by muscle group, equipment and
// a substring of the name.
func (s *SQLiteStore) ListExercises(ctx context.Context, filter models.ExerciseFilter) ([]models.Exercise, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.MuscleGroup != "" {
		conditions = append(conditions, "muscle_group = ?")
		args = append(args, filter.MuscleGroup)
	}
	if filter.Equipment != "" {
		conditions = append(conditions, "equipment = ?")
		args = append(args, filter.Equipment)
	}
	if filter.Search != "" {
		conditions = append(conditions, "name LIKE '%' || ? || '%'")
		args = append(args, filter.Search)
	}

	query := "SELECT id, name, muscle_group, equipment, description, image_url FROM exercise"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY muscle_group, name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercises: %w", err)
	}

	return exercises, nil
}

// UpsertExercises seeds the catalog. Existing exercises keep their ID, so
// plans and logged sets referencing them survive a re-seed.
func (s *SQLiteStore) UpsertExercises(ctx context.Context, exercises []models.Exercise) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for i := range exercises {
			ex := &exercises[i]
			if ex.ID == "" {
				ex.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO exercise (id, name, muscle_group, equipment, description, image_url)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT (name) DO UPDATE SET
					muscle_group = excluded.muscle_group,
					equipment = excluded.equipment,
					description = excluded.description,
					image_url = excluded.image_url
			`, ex.ID, ex.Name, ex.MuscleGroup, ex.Equipment, ex.Description, nullableString(ex.ImageURL))
			if err != nil {
				return fmt.Errorf("failed to upsert exercise %q: %w", ex.Name, err)
			}
		}
		return nil
	})
}

func scanExercise(row scanner, dest ...any) (*models.Exercise, error) {
	var (
		ex       models.Exercise
		imageURL sql.NullString
	)
	dest = append(dest, &ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Equipment, &ex.Description, &imageURL)
	if err := row.Scan(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan exercise: %w", err)
	}
	ex.ImageURL = stringPtr(imageURL)
	return &ex, nil
}
