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

// MenuStore provides menu category and menu item reads.
type MenuStore interface {
	ListMenuCategories(ctx context.Context) ([]model.MenuCategory, error)
	GetMenuCategoryByID(ctx context.Context, id int64) (*model.MenuCategory, error)
	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)
	GetMenuItemByID(ctx context.Context, id int64) (*model.MenuItem, error)
}

// MenuHandler handles HTTP requests for menu categories and items.
type MenuHandler struct {
	store  MenuStore
	logger *slog.Logger
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store MenuStore, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{store: store, logger: logger}
}

// ListCategories handles GET /menu-categories.
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListMenuCategories(r.Context())
	if err != nil {
		h.logger.Error("store_error", "resource", "menu_category", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /menu-categories/{id}.
func (h *MenuHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Menu category not found")
		return
	}

	category, err := h.store.GetMenuCategoryByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuCategoryNotFound) {
			writeError(w, http.StatusNotFound, "Menu category not found")
			return
		}
		h.logger.Error("store_error", "resource", "menu_category", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// ListItems handles GET /menu-items.
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListMenuItems(r.Context())
	if err != nil {
		h.logger.Error("store_error", "resource", "menu_item", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetItem handles GET /menu-items/{id}.
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	item, err := h.store.GetMenuItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			writeError(w, http.StatusNotFound, "Menu item not found")
			return
		}
		h.logger.Error("store_error", "resource", "menu_item", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, item)
}
