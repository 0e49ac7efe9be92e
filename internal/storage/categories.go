package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/horeca-one/catalogd/internal/model"
)

// GetCategoryByLabel returns the category whose label matches exactly, or
// (nil, nil) when no such category exists. Matching is case-sensitive.
func (s *SQLiteStorage) GetCategoryByLabel(ctx context.Context, label string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(label, "label"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, label, description, status, display_order, created_at
		FROM categories
		WHERE label = ?`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, label).Scan(
		&cat.ID, &cat.Label, &cat.Description, &cat.Status, &cat.Order, &cat.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// GetMaxCategoryOrder returns the highest display order currently assigned.
// The second return value is false when no categories exist yet.
func (s *SQLiteStorage) GetMaxCategoryOrder(ctx context.Context) (int, bool, error) {
	if err := validateContext(ctx); err != nil {
		return 0, false, err
	}

	var maxOrder sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(display_order) FROM categories`).Scan(&maxOrder)
	if err != nil {
		return 0, false, fmt.Errorf("failed to query max category order: %w", err)
	}

	if !maxOrder.Valid {
		return 0, false, nil
	}
	return int(maxOrder.Int64), true, nil
}

// CreateCategory persists a new category with the given label and display
// order. The id is assigned here; callers treat it as opaque.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, label string, order int) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(label, "label"); err != nil {
		return nil, err
	}
	if order < 0 {
		return nil, ErrInvalidOrder
	}

	cat := &model.Category{
		ID:          uuid.NewString(),
		Label:       label,
		Description: label + " products",
		Status:      model.StatusShow,
		Order:       order,
		CreatedAt:   time.Now(),
	}

	query := `
		INSERT INTO categories (id, label, description, status, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query,
		cat.ID, cat.Label, cat.Description, string(cat.Status), cat.Order, cat.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("created new category", "label", label, "order", order)
	return cat, nil
}

// ListCategories returns all categories ordered by display order.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, label, description, status, display_order, created_at
		FROM categories
		ORDER BY display_order`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Label, &cat.Description, &cat.Status, &cat.Order, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}
