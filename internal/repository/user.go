package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tavolo/tavolo/internal/model"
)

// ErrUserNotFound is returned when no user matches the requested id.
var ErrUserNotFound = errors.New("user not found")

// ListUsers returns every user row in store order.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, email, password, username, created_at, updated_at
		FROM "user"
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetUserByID retrieves a single user by id.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, email, password, username, created_at, updated_at
		FROM "user"
		WHERE id = $1
	`

	var u model.User
	if err := scanUser(r.pool.QueryRow(ctx, query, id), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.Username,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}
