package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tavolo/tavolo/internal/model"
)

// ErrImageNotFound is returned when no image matches the requested id.
var ErrImageNotFound = errors.New("image not found")

// ListImages returns every image row in store order.
func (r *Repository) ListImages(ctx context.Context) ([]model.Image, error) {
	query := `
		SELECT id, image_url, orientation, user_id, created_at, updated_at
		FROM image
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := []model.Image{}
	for rows.Next() {
		var img model.Image
		if err := scanImage(rows, &img); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating images: %w", err)
	}

	return images, nil
}

// GetImageByID retrieves a single image by id.
func (r *Repository) GetImageByID(ctx context.Context, id int64) (*model.Image, error) {
	query := `
		SELECT id, image_url, orientation, user_id, created_at, updated_at
		FROM image
		WHERE id = $1
	`

	var img model.Image
	if err := scanImage(r.pool.QueryRow(ctx, query, id), &img); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get image by ID: %w", err)
	}

	return &img, nil
}

func scanImage(row pgx.Row, img *model.Image) error {
	return row.Scan(
		&img.ID,
		&img.ImageURL,
		&img.Orientation,
		&img.UserID,
		&img.CreatedAt,
		&img.UpdatedAt,
	)
}
