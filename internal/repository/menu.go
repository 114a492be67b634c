package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tavolo/tavolo/internal/model"
)

// Sentinel errors for menu lookups.
var (
	ErrMenuCategoryNotFound = errors.New("menu category not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
)

// ListMenuCategories returns every menu category row in store order.
func (r *Repository) ListMenuCategories(ctx context.Context) ([]model.MenuCategory, error) {
	query := `
		SELECT id, name, slug, description, created_at, updated_at
		FROM menu_category
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}
	defer rows.Close()

	categories := []model.MenuCategory{}
	for rows.Next() {
		var c model.MenuCategory
		if err := scanMenuCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan menu category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu categories: %w", err)
	}

	return categories, nil
}

// GetMenuCategoryByID retrieves a single menu category by id.
func (r *Repository) GetMenuCategoryByID(ctx context.Context, id int64) (*model.MenuCategory, error) {
	query := `
		SELECT id, name, slug, description, created_at, updated_at
		FROM menu_category
		WHERE id = $1
	`

	var c model.MenuCategory
	if err := scanMenuCategory(r.pool.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get menu category by ID: %w", err)
	}

	return &c, nil
}

// ListMenuItems returns every menu item row in store order.
func (r *Repository) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT id, title, price, currency, rating, text, image_url, badge, category_id, created_at, updated_at
		FROM menu_item
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		var it model.MenuItem
		if err := scanMenuItem(rows, &it); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetMenuItemByID retrieves a single menu item by id.
func (r *Repository) GetMenuItemByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := `
		SELECT id, title, price, currency, rating, text, image_url, badge, category_id, created_at, updated_at
		FROM menu_item
		WHERE id = $1
	`

	var it model.MenuItem
	if err := scanMenuItem(r.pool.QueryRow(ctx, query, id), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item by ID: %w", err)
	}

	return &it, nil
}

func scanMenuCategory(row pgx.Row, c *model.MenuCategory) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func scanMenuItem(row pgx.Row, it *model.MenuItem) error {
	return row.Scan(
		&it.ID,
		&it.Title,
		&it.Price,
		&it.Currency,
		&it.Rating,
		&it.Text,
		&it.ImageURL,
		&it.Badge,
		&it.CategoryID,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
}
