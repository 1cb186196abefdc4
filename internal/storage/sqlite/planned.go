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

// ListPlannedDays returns the materialized days in [start, end].
func (s *SQLiteStore) ListPlannedDays(ctx context.Context, userID, start, end string) ([]models.PlannedDay, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.date, d.template_id, d.user_id, d.created_at,
			t.id, t.name, t.color, t.user_id, t.created_at
		FROM planned_day d
		LEFT JOIN day_template t ON t.id = d.template_id
		WHERE d.user_id = ? AND d.date >= ? AND d.date <= ?
		ORDER BY d.date
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned days: %w", err)
	}
	defer rows.Close()

	var days []models.PlannedDay
	index := make(map[string]int)
	for rows.Next() {
		var (
			day                      models.PlannedDay
			templateID               sql.NullString
			createdAt                int64
			tplID, tplName, tplColor sql.NullString
			tplUserID                sql.NullString
			tplCreated               sql.NullInt64
		)
		if err := rows.Scan(
			&day.ID, &day.Date, &templateID, &day.UserID, &createdAt,
			&tplID, &tplName, &tplColor, &tplUserID, &tplCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan planned day: %w", err)
		}
		day.TemplateID = stringPtr(templateID)
		day.CreatedAt = fromMillis(createdAt)
		if tplID.Valid {
			day.Template = &models.DayTemplate{
				ID:        tplID.String,
				Name:      tplName.String,
				Color:     tplColor.String,
				UserID:    tplUserID.String,
				CreatedAt: fromMillis(tplCreated.Int64),
			}
		}
		index[day.ID] = len(days)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate planned days: %w", err)
	}
	rows.Close()

	if len(days) == 0 {
		return nil, nil
	}

	slotRows, err := s.db.QueryContext(ctx, `
		SELECT ps.id, ps.start_time, ps.end_time, ps.sort_order, ps.subcategory_id, ps.planned_day_id,
			ps.template_slot_id, ps.workout_plan_id, ps.user_id, ps.created_at,`+
		subcategoryColumns+`
		FROM planned_slot ps
		JOIN planned_day d ON d.id = ps.planned_day_id
		JOIN subcategory sc ON sc.id = ps.subcategory_id
		JOIN category c ON c.id = sc.category_id
		WHERE ps.user_id = ? AND d.date >= ? AND d.date <= ?
		ORDER BY d.date, ps.sort_order`,
		userID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var (
			slot                        models.PlannedSlot
			templateSlotID, workoutPlan sql.NullString
			createdAt                   int64
		)
		sub, err := scanNestedSubcategory(slotRows,
			&slot.ID, &slot.StartTime, &slot.EndTime, &slot.Order, &slot.SubcategoryID, &slot.PlannedDayID,
			&templateSlotID, &workoutPlan, &slot.UserID, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planned slot: %w", err)
		}
		slot.TemplateSlotID = stringPtr(templateSlotID)
		slot.WorkoutPlanID = stringPtr(workoutPlan)
		slot.CreatedAt = fromMillis(createdAt)
		slot.Subcategory = sub
		if i, ok := index[slot.PlannedDayID]; ok {
			days[i].Slots = append(days[i].Slots, slot)
		}
	}
	if err := slotRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate planned slots: %w", err)
	}

	return days, nil
}

// MaterializeDays inserts the seeded days and their template slots in one
// transaction. A date that already has a day is skipped, slots included.
func (s *SQLiteStore) MaterializeDays(ctx context.Context, userID string, seeds []models.DaySeed) error {
	if len(seeds) == 0 {
		return nil
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, seed := range seeds {
			dayID, created, err := ensureDay(ctx, tx, userID, seed.Date, seed.TemplateID)
			if err != nil {
				return err
			}
			if !created || seed.TemplateID == nil {
				continue
			}
			if err := copyTemplateSlots(ctx, tx, userID, dayID, *seed.TemplateID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyTemplate replaces the slots of the day with those of the template.
func (s *SQLiteStore) ApplyTemplate(ctx context.Context, userID, date, templateID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireOwned(ctx, tx, "day_template", templateID, userID); err != nil {
			return err
		}

		dayID, created, err := ensureDay(ctx, tx, userID, date, &templateID)
		if err != nil {
			return err
		}
		if !created {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM planned_slot WHERE planned_day_id = ? AND user_id = ?", dayID, userID,
			); err != nil {
				return fmt.Errorf("failed to clear planned slots: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				"UPDATE planned_day SET template_id = ? WHERE id = ?", templateID, dayID,
			); err != nil {
				return fmt.Errorf("failed to update planned day template: %w", err)
			}
		}

		return copyTemplateSlots(ctx, tx, userID, dayID, templateID)
	})
}

// ClearDay empties a materialized day.
func (s *SQLiteStore) ClearDay(ctx context.Context, userID, date string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		dayID, err := findDay(ctx, tx, userID, date)
		if err != nil || dayID == "" {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM planned_slot WHERE planned_day_id = ? AND user_id = ?", dayID, userID,
		); err != nil {
			return fmt.Errorf("failed to clear planned slots: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE planned_day SET template_id = NULL WHERE id = ?", dayID,
		); err != nil {
			return fmt.Errorf("failed to clear planned day template: %w", err)
		}
		return nil
	})
}

// CreatePlannedSlot adds a manual slot to the day of date, creating an empty
// day when needed.
func (s *SQLiteStore) CreatePlannedSlot(ctx context.Context, date string, slot *models.PlannedSlot) error {
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkSlotRefs(ctx, tx, slot); err != nil {
			return err
		}

		dayID, _, err := ensureDay(ctx, tx, slot.UserID, date, nil)
		if err != nil {
			return err
		}
		slot.PlannedDayID = dayID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO planned_slot (id, start_time, end_time, sort_order, subcategory_id, planned_day_id,
				template_slot_id, workout_plan_id, user_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, slot.ID, slot.StartTime, slot.EndTime, slot.Order, slot.SubcategoryID, slot.PlannedDayID,
			nullableString(slot.TemplateSlotID), nullableString(slot.WorkoutPlanID), slot.UserID, toMillis(slot.CreatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert planned slot: %w", mapConstraint(err))
		}
		return nil
	})
}

// UpdatePlannedSlot overwrites a slot. The edited slot no longer follows its
// template slot.
func (s *SQLiteStore) UpdatePlannedSlot(ctx context.Context, slot *models.PlannedSlot) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkSlotRefs(ctx, tx, slot); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			UPDATE planned_slot
			SET start_time = ?, end_time = ?, subcategory_id = ?, sort_order = ?,
				template_slot_id = NULL, workout_plan_id = ?
			WHERE id = ? AND user_id = ?
		`, slot.StartTime, slot.EndTime, slot.SubcategoryID, slot.Order,
			nullableString(slot.WorkoutPlanID), slot.ID, slot.UserID)
		if err != nil {
			return fmt.Errorf("failed to update planned slot: %w", err)
		}

		var createdAt int64
		err = tx.QueryRowContext(ctx,
			"SELECT planned_day_id, created_at FROM planned_slot WHERE id = ? AND user_id = ?",
			slot.ID, slot.UserID,
		).Scan(&slot.PlannedDayID, &createdAt)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("planned slot %s: %w", slot.ID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to reload planned slot: %w", err)
		}
		slot.CreatedAt = fromMillis(createdAt)
		slot.TemplateSlotID = nil
		return nil
	})
}

// DeletePlannedSlot deletes a slot.
func (s *SQLiteStore) DeletePlannedSlot(ctx context.Context, userID, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM planned_slot WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to delete planned slot: %w", err)
	}
	return nil
}

func checkSlotRefs(ctx context.Context, q querier, slot *models.PlannedSlot) error {
	if err := requireOwned(ctx, q, "subcategory", slot.SubcategoryID, slot.UserID); err != nil {
		return err
	}
	if slot.WorkoutPlanID != nil {
		return requireOwned(ctx, q, "workout_plan", *slot.WorkoutPlanID, slot.UserID)
	}
	return nil
}

// findDay returns the id of the user's day at date, or "" when there is none.
func findDay(ctx context.Context, q querier, userID, date string) (string, error) {
	var id string
	err := q.QueryRowContext(ctx,
		"SELECT id FROM planned_day WHERE date = ? AND user_id = ?", date, userID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find planned day: %w", err)
	}
	return id, nil
}

// ensureDay inserts the day unless (user, date) exists and returns its id.
// created reports whether this call inserted it.
func ensureDay(ctx context.Context, q querier, userID, date string, templateID *string) (id string, created bool, err error) {
	id = uuid.New().String()
	res, err := q.ExecContext(ctx, `
		INSERT INTO planned_day (id, date, template_id, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (date, user_id) DO NOTHING
	`, id, date, nullableString(templateID), userID, toMillis(time.Now()))
	if err != nil {
		return "", false, fmt.Errorf("failed to insert planned day: %w", mapConstraint(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("failed to insert planned day: %w", err)
	}
	if n == 1 {
		return id, true, nil
	}

	id, err = findDay(ctx, q, userID, date)
	return id, false, err
}

// copyTemplateSlots copies the template's slots, in order, onto a day.
func copyTemplateSlots(ctx context.Context, q querier, userID, dayID, templateID string) error {
	rows, err := q.QueryContext(ctx, `
		SELECT id, start_time, end_time, sort_order, subcategory_id
		FROM template_slot
		WHERE template_id = ? AND user_id = ?
		ORDER BY sort_order
	`, templateID, userID)
	if err != nil {
		return fmt.Errorf("failed to load template slots: %w", err)
	}

	var slots []models.TemplateSlot
	for rows.Next() {
		var ts models.TemplateSlot
		if err := rows.Scan(&ts.ID, &ts.StartTime, &ts.EndTime, &ts.Order, &ts.SubcategoryID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan template slot: %w", err)
		}
		slots = append(slots, ts)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate template slots: %w", err)
	}

	now := toMillis(time.Now())
	for _, ts := range slots {
		_, err := q.ExecContext(ctx, `
			INSERT INTO planned_slot (id, start_time, end_time, sort_order, subcategory_id, planned_day_id,
				template_slot_id, user_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), ts.StartTime, ts.EndTime, ts.Order, ts.SubcategoryID, dayID, ts.ID, userID, now)
		if err != nil {
			return fmt.Errorf("failed to copy template slot: %w", err)
		}
	}
	return nil
}
