package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger checks store connectivity without touching any table.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the /test-db diagnostic probe.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// testDBResponse is the diagnostic probe body. Error is only set on
// failure, giving the probe its distinct failure shape.
type testDBResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Status  string `json:"status"`
}

// TestDB handles GET /test-db. It validates a store connection and
// reports connected/disconnected without querying any table.
func (h *HealthHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("store_unreachable", "error", err)
		writeJSON(w, http.StatusInternalServerError, testDBResponse{
			Message: "Unable to connect to database",
			Error:   err.Error(),
			Status:  "disconnected",
		})
		return
	}

	writeJSON(w, http.StatusOK, testDBResponse{
		Message: "Database connection successful",
		Status:  "connected",
	})
}
