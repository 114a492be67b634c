package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tavolo/tavolo/internal/model"
)

// FAQStore provides grouped FAQ reads.
type FAQStore interface {
	ListFAQGroups(ctx context.Context) ([]model.FAQGroup, error)
}

// FAQHandler handles HTTP requests for grouped FAQs.
type FAQHandler struct {
	store  FAQStore
	logger *slog.Logger
}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler(store FAQStore, logger *slog.Logger) *FAQHandler {
	return &FAQHandler{store: store, logger: logger}
}

// List handles GET /faqs.
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.store.ListFAQGroups(r.Context())
	if err != nil {
		h.logger.Error("store_error", "resource", "faq", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, groups)
}
