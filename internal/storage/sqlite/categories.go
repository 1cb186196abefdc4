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

// CreateCategories inserts categories with their subcategories in one transaction.
func (s *SQLiteStore) CreateCategories(ctx context.Context, categories []models.Category) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for i := range categories {
			cat := &categories[i]
			if err := insertCategory(ctx, tx, cat); err != nil {
				return err
			}
			for j := range cat.Subcategories {
				sub := &cat.Subcategories[j]
				sub.CategoryID = cat.ID
				sub.UserID = cat.UserID
				if err := insertSubcategory(ctx, tx, sub); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ListCategories returns the user's categories with their subcategories.
func (s *SQLiteStore) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, color, is_default, user_id, created_at
		FROM category
		WHERE user_id = ?
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	index := make(map[string]int)
	for rows.Next() {
		var (
			cat       models.Category
			createdAt int64
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.IsDefault, &cat.UserID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.CreatedAt = fromMillis(createdAt)
		index[cat.ID] = len(categories)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	rows.Close()

	subRows, err := s.db.QueryContext(ctx, `
		SELECT id, name, module_type, is_default, category_id, user_id, created_at
		FROM subcategory
		WHERE user_id = ?
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer subRows.Close()

	for subRows.Next() {
		sub, err := scanSubcategory(subRows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[sub.CategoryID]; ok {
			categories[i].Subcategories = append(categories[i].Subcategories, *sub)
		}
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subcategories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts a user category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, cat *models.Category) error {
	return insertCategory(ctx, s.db, cat)
}

// UpdateCategory renames and restyles a category owned by cat.UserID.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, cat *models.Category) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE category SET name = ?, icon = ?, color = ? WHERE id = ? AND user_id = ?",
		cat.Name, cat.Icon, cat.Color, cat.ID, cat.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", mapConstraint(err))
	}
	return nil
}

// DeleteCategory deletes a non-default category and, by cascade, its subcategories.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, userID, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := rejectDefault(ctx, tx, "category", id, userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM category WHERE id = ? AND user_id = ?", id, userID); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}

// CreateSubcategory inserts a subcategory under a category owned by the same user.
func (s *SQLiteStore) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireOwned(ctx, tx, "category", sub.CategoryID, sub.UserID); err != nil {
			return err
		}
		return insertSubcategory(ctx, tx, sub)
	})
}

// UpdateSubcategory renames a subcategory and sets its module type.
func (s *SQLiteStore) UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE subcategory SET name = ?, module_type = ? WHERE id = ? AND user_id = ?",
		sub.Name, nullableString(sub.ModuleType), sub.ID, sub.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subcategory: %w", mapConstraint(err))
	}
	return nil
}

// DeleteSubcategory deletes a non-default subcategory.
func (s *SQLiteStore) DeleteSubcategory(ctx context.Context, userID, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := rejectDefault(ctx, tx, "subcategory", id, userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM subcategory WHERE id = ? AND user_id = ?", id, userID); err != nil {
			return fmt.Errorf("failed to delete subcategory: %w", err)
		}
		return nil
	})
}

// rejectDefault returns storage.ErrProtected for a default row. Missing rows
// pass so that the following delete silently affects nothing.
func rejectDefault(ctx context.Context, q querier, table, id, userID string) error {
	var isDefault bool
	err := q.QueryRowContext(ctx,
		"SELECT is_default FROM "+table+" WHERE id = ? AND user_id = ?", id, userID,
	).Scan(&isDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}
	if isDefault {
		return storage.ErrProtected
	}
	return nil
}

func insertCategory(ctx context.Context, q querier, cat *models.Category) error {
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	if cat.CreatedAt.IsZero() {
		cat.CreatedAt = time.Now()
	}

	_, err := q.ExecContext(ctx, `
		INSERT INTO category (id, name, icon, color, is_default, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, cat.ID, cat.Name, cat.Icon, cat.Color, cat.IsDefault, cat.UserID, toMillis(cat.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", mapConstraint(err))
	}
	return nil
}

func insertSubcategory(ctx context.Context, q querier, sub *models.Subcategory) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err := q.ExecContext(ctx, `
		INSERT INTO subcategory (id, name, module_type, is_default, category_id, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.Name, nullableString(sub.ModuleType), sub.IsDefault, sub.CategoryID, sub.UserID, toMillis(sub.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert subcategory: %w", mapConstraint(err))
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubcategory(row scanner) (*models.Subcategory, error) {
	var (
		sub        models.Subcategory
		moduleType sql.NullString
		createdAt  int64
	)
	if err := row.Scan(&sub.ID, &sub.Name, &moduleType, &sub.IsDefault, &sub.CategoryID, &sub.UserID, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to scan subcategory: %w", err)
	}
	sub.ModuleType = stringPtr(moduleType)
	sub.CreatedAt = fromMillis(createdAt)
	return &sub, nil
}
