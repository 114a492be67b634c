package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tavolo/tavolo/internal/model"
	"github.com/tavolo/tavolo/internal/repository"
)

// ReviewStore provides review reads.
type ReviewStore interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
	GetReviewByID(ctx context.Context, id int64) (*model.Review, error)
}

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	store  ReviewStore
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(store ReviewStore, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{store: store, logger: logger}
}

// List handles GET /reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ListReviews(r.Context())
	if err != nil {
		h.logger.Error("store_error", "resource", "review", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// Get handles GET /reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}

	review, err := h.store.GetReviewByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			writeError(w, http.StatusNotFound, "Review not found")
			return
		}
		h.logger.Error("store_error", "resource", "review", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, review)
}
