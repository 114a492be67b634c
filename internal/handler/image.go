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

// ImageStore provides image reads.
type ImageStore interface {
	ListImages(ctx context.Context) ([]model.Image, error)
	GetImageByID(ctx context.Context, id int64) (*model.Image, error)
}

// ImageHandler handles HTTP requests for images.
type ImageHandler struct {
	store  ImageStore
	logger *slog.Logger
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(store ImageStore, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{store: store, logger: logger}
}

// List handles GET /images.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.store.ListImages(r.Context())
	if err != nil {
		h.logger.Error("store_error", "resource", "image", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, images)
}

// Get handles GET /images/{id}.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	image, err := h.store.GetImageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			writeError(w, http.StatusNotFound, "Image not found")
			return
		}
		h.logger.Error("store_error", "resource", "image", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, image)
}
