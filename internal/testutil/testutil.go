// Package testutil provides helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 771177

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// ResetCatalogSchema drops and recreates the catalog schema for tests.
func ResetCatalogSchema(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downSQL, err := os.ReadFile(filepath.Join(root, "migrations", "000001_catalog.down.sql"))
	if err != nil {
		return fmt.Errorf("read down migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply down migration: %w", err)
	}

	upSQL, err := os.ReadFile(filepath.Join(root, "migrations", "000001_catalog.up.sql"))
	if err != nil {
		return fmt.Errorf("read up migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply up migration: %w", err)
	}

	return nil
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Seed helpers
// ============================================================================

// InsertMenuCategory seeds a menu category with a fixed id.
func InsertMenuCategory(ctx context.Context, pool *pgxpool.Pool, id int64, name, slug string) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO menu_category (id, name, slug) VALUES ($1, $2, $3)`,
		id, name, slug)
	return err
}

// InsertMenuItem seeds a menu item with a fixed id.
func InsertMenuItem(ctx context.Context, pool *pgxpool.Pool, id int64, title string, price float64, categoryID int64, rating int) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO menu_item (id, title, price, category_id, rating) VALUES ($1, $2, $3, $4, $5)`,
		id, title, price, categoryID, rating)
	return err
}

// InsertFAQCategory seeds an FAQ category and returns its id.
func InsertFAQCategory(ctx context.Context, pool *pgxpool.Pool, name string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO category_faq (name) VALUES ($1) RETURNING id`,
		name).Scan(&id)
	return id, err
}

// InsertFAQ seeds one FAQ under a category.
func InsertFAQ(ctx context.Context, pool *pgxpool.Pool, categoryID int64, title, text string) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO faq (title, text, category_faq_id) VALUES ($1, $2, $3)`,
		title, text, categoryID)
	return err
}

// InsertReview seeds a review and returns its id.
func InsertReview(ctx context.Context, pool *pgxpool.Pool, title, name string, rating int, text string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO review (title, name, rating, text) VALUES ($1, $2, $3, $4) RETURNING id`,
		title, name, rating, text).Scan(&id)
	return id, err
}

// InsertUser seeds a user and returns its id.
func InsertUser(ctx context.Context, pool *pgxpool.Pool, email, username string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO "user" (email, password, username) VALUES ($1, $2, $3) RETURNING id`,
		email, "x", username).Scan(&id)
	return id, err
}

// InsertImage seeds an image owned by a user and returns its id.
func InsertImage(ctx context.Context, pool *pgxpool.Pool, imageURL string, userID int64) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO image (image_url, user_id) VALUES ($1, $2) RETURNING id`,
		imageURL, userID).Scan(&id)
	return id, err
}
