package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/storage"
)

// subcategoryColumns selects a subcategory and its category, aliased sc and c.
const subcategoryColumns = `
	sc.id, sc.name, sc.module_type, sc.is_default, sc.category_id, sc.user_id, sc.created_at,
	c.id, c.name, c.icon, c.color, c.is_default, c.user_id, c.created_at`

// scanNestedSubcategory reads the columns of subcategoryColumns that follow
// the caller's own columns in dest.
func scanNestedSubcategory(row scanner, dest ...any) (*models.Subcategory, error) {
	var (
		sub                   models.Subcategory
		cat                   models.Category
		moduleType            sql.NullString
		subCreated, catCreate int64
	)
	dest = append(dest,
		&sub.ID, &sub.Name, &moduleType, &sub.IsDefault, &sub.CategoryID, &sub.UserID, &subCreated,
		&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.IsDefault, &cat.UserID, &catCreate,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	sub.ModuleType = stringPtr(moduleType)
	sub.CreatedAt = fromMillis(subCreated)
	cat.CreatedAt = fromMillis(catCreate)
	sub.Category = &cat
	return &sub, nil
}

// ListDayTemplates returns the user's templates with slots and recurrences.
func (s *SQLiteStore) ListDayTemplates(ctx context.Context, userID string) ([]models.DayTemplate, error) {
	return s.loadTemplates(ctx, userID, "")
}

// GetDayTemplate returns one template with slots and recurrences.
func (s *SQLiteStore) GetDayTemplate(ctx context.Context, userID, id string) (*models.DayTemplate, error) {
	templates, err := s.loadTemplates(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("day template %s: %w", id, storage.ErrNotFound)
	}
	return &templates[0], nil
}

// loadTemplates loads every template of the user, or only templateID when set.
func (s *SQLiteStore) loadTemplates(ctx context.Context, userID, templateID string) ([]models.DayTemplate, error) {
	filter, args := "user_id = ?", []any{userID}
	if templateID != "" {
		filter += " AND id = ?"
		args = append(args, templateID)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, color, user_id, created_at FROM day_template WHERE "+filter+" ORDER BY name",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list day templates: %w", err)
	}
	defer rows.Close()

	var templates []models.DayTemplate
	index := make(map[string]int)
	for rows.Next() {
		var (
			tpl       models.DayTemplate
			createdAt int64
		)
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Color, &tpl.UserID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan day template: %w", err)
		}
		tpl.CreatedAt = fromMillis(createdAt)
		index[tpl.ID] = len(templates)
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day templates: %w", err)
	}
	rows.Close()

	if len(templates) == 0 {
		return nil, nil
	}

	slotFilter, slotArgs := "ts.user_id = ?", []any{userID}
	if templateID != "" {
		slotFilter += " AND ts.template_id = ?"
		slotArgs = append(slotArgs, templateID)
	}
	slotRows, err := s.db.QueryContext(ctx, `
		SELECT ts.id, ts.start_time, ts.end_time, ts.sort_order, ts.subcategory_id, ts.template_id, ts.user_id, ts.created_at,`+
		subcategoryColumns+`
		FROM template_slot ts
		JOIN subcategory sc ON sc.id = ts.subcategory_id
		JOIN category c ON c.id = sc.category_id
		WHERE `+slotFilter+`
		ORDER BY ts.template_id, ts.sort_order`,
		slotArgs...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list template slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var (
			slot      models.TemplateSlot
			createdAt int64
		)
		sub, err := scanNestedSubcategory(slotRows,
			&slot.ID, &slot.StartTime, &slot.EndTime, &slot.Order, &slot.SubcategoryID, &slot.TemplateID, &slot.UserID, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template slot: %w", err)
		}
		slot.CreatedAt = fromMillis(createdAt)
		slot.Subcategory = sub
		if i, ok := index[slot.TemplateID]; ok {
			templates[i].Slots = append(templates[i].Slots, slot)
		}
	}
	if err := slotRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate template slots: %w", err)
	}
	slotRows.Close()

	recurrences, err := s.queryRecurrences(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, rec := range recurrences {
		if i, ok := index[rec.TemplateID]; ok {
			rec.Template = nil
			templates[i].Recurrences = append(templates[i].Recurrences, rec)
		}
	}

	return templates, nil
}

// CreateDayTemplate inserts an empty template.
func (s *SQLiteStore) CreateDayTemplate(ctx context.Context, tpl *models.DayTemplate) error {
	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO day_template (id, name, color, user_id, created_at) VALUES (?, ?, ?, ?, ?)",
		tpl.ID, tpl.Name, tpl.Color, tpl.UserID, toMillis(tpl.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert day template: %w", mapConstraint(err))
	}
	return nil
}

// UpdateDayTemplate renames and recolors a template.
func (s *SQLiteStore) UpdateDayTemplate(ctx context.Context, tpl *models.DayTemplate) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE day_template SET name = ?, color = ? WHERE id = ? AND user_id = ?",
		tpl.Name, tpl.Color, tpl.ID, tpl.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update day template: %w", mapConstraint(err))
	}
	return nil
}

// DeleteDayTemplate deletes a template with its slots and recurrences.
// Planned days generated from it keep their slots and lose the reference.
func (s *SQLiteStore) DeleteDayTemplate(ctx context.Context, userID, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM day_template WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to delete day template: %w", err)
	}
	return nil
}

// CreateTemplateSlot adds a slot to a template. Both the template and the
// subcategory must belong to the slot's user.
func (s *SQLiteStore) CreateTemplateSlot(ctx context.Context, slot *models.TemplateSlot) error {
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireOwned(ctx, tx, "day_template", slot.TemplateID, slot.UserID); err != nil {
			return err
		}
		if err := requireOwned(ctx, tx, "subcategory", slot.SubcategoryID, slot.UserID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO template_slot (id, start_time, end_time, sort_order, subcategory_id, template_id, user_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, slot.ID, slot.StartTime, slot.EndTime, slot.Order, slot.SubcategoryID, slot.TemplateID, slot.UserID, toMillis(slot.CreatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert template slot: %w", mapConstraint(err))
		}
		return nil
	})
}

// UpdateTemplateSlot overwrites the times, subcategory and order of a slot.
func (s *SQLiteStore) UpdateTemplateSlot(ctx context.Context, slot *models.TemplateSlot) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireOwned(ctx, tx, "subcategory", slot.SubcategoryID, slot.UserID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			UPDATE template_slot SET start_time = ?, end_time = ?, subcategory_id = ?, sort_order = ?
			WHERE id = ? AND user_id = ?
		`, slot.StartTime, slot.EndTime, slot.SubcategoryID, slot.Order, slot.ID, slot.UserID)
		if err != nil {
			return fmt.Errorf("failed to update template slot: %w", err)
		}
		return nil
	})
}

// DeleteTemplateSlot deletes a slot. Planned slots copied from it are kept.
func (s *SQLiteStore) DeleteTemplateSlot(ctx context.Context, userID, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM template_slot WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to delete template slot: %w", err)
	}
	return nil
}

// SetTemplateSlotOrder moves one slot.
func (s *SQLiteStore) SetTemplateSlotOrder(ctx context.Context, userID string, update models.OrderUpdate) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE template_slot SET sort_order = ? WHERE id = ? AND user_id = ?",
		update.Order, update.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to reorder template slot: %w", err)
	}
	return nil
}

// ListRecurrences returns the recurrence map of the user.
func (s *SQLiteStore) ListRecurrences(ctx context.Context, userID string) ([]models.Recurrence, error) {
	return s.queryRecurrences(ctx, userID)
}

func (s *SQLiteStore) queryRecurrences(ctx context.Context, userID string) ([]models.Recurrence, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.day_of_week, r.template_id, r.user_id, r.created_at,
			t.id, t.name, t.color, t.user_id, t.created_at
		FROM template_recurrence r
		JOIN day_template t ON t.id = r.template_id
		WHERE r.user_id = ?
		ORDER BY r.day_of_week
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurrences: %w", err)
	}
	defer rows.Close()

	var recurrences []models.Recurrence
	for rows.Next() {
		var (
			rec                    models.Recurrence
			tpl                    models.DayTemplate
			recCreated, tplCreated int64
		)
		if err := rows.Scan(
			&rec.ID, &rec.DayOfWeek, &rec.TemplateID, &rec.UserID, &recCreated,
			&tpl.ID, &tpl.Name, &tpl.Color, &tpl.UserID, &tplCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recurrence: %w", err)
		}
		rec.CreatedAt = fromMillis(recCreated)
		tpl.CreatedAt = fromMillis(tplCreated)
		rec.Template = &tpl
		recurrences = append(recurrences, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recurrences: %w", err)
	}

	return recurrences, nil
}

// SetRecurrence assigns a template to a weekday, replacing any previous
// assignment of that weekday in the same transaction.
func (s *SQLiteStore) SetRecurrence(ctx context.Context, rec *models.Recurrence) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireOwned(ctx, tx, "day_template", rec.TemplateID, rec.UserID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM template_recurrence WHERE day_of_week = ? AND user_id = ?",
			rec.DayOfWeek, rec.UserID,
		); err != nil {
			return fmt.Errorf("failed to clear recurrence: %w", err)
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO template_recurrence (id, day_of_week, template_id, user_id, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, rec.ID, rec.DayOfWeek, rec.TemplateID, rec.UserID, toMillis(rec.CreatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert recurrence: %w", mapConstraint(err))
		}
		return nil
	})
}

// UnsetRecurrence removes the assignment of a weekday.
func (s *SQLiteStore) UnsetRecurrence(ctx context.Context, userID string, dayOfWeek int) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM template_recurrence WHERE day_of_week = ? AND user_id = ?",
		dayOfWeek, userID,
	); err != nil {
		return fmt.Errorf("failed to unset recurrence: %w", err)
	}
	return nil
}
