package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tavolo/tavolo/internal/model"
)

// ErrReviewNotFound is returned when no review matches the requested id.
var ErrReviewNotFound = errors.New("review not found")

// ListReviews returns every review row in store order.
func (r *Repository) ListReviews(ctx context.Context) ([]model.Review, error) {
	query := `
		SELECT id, title, name, rating, image, text, created_at, updated_at
		FROM review
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := scanReview(rows, &rv); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// GetReviewByID retrieves a single review by id.
func (r *Repository) GetReviewByID(ctx context.Context, id int64) (*model.Review, error) {
	query := `
		SELECT id, title, name, rating, image, text, created_at, updated_at
		FROM review
		WHERE id = $1
	`

	var rv model.Review
	if err := scanReview(r.pool.QueryRow(ctx, query, id), &rv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review by ID: %w", err)
	}

	return &rv, nil
}

func scanReview(row pgx.Row, rv *model.Review) error {
	return row.Scan(
		&rv.ID,
		&rv.Title,
		&rv.Name,
		&rv.Rating,
		&rv.Image,
		&rv.Text,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
}
