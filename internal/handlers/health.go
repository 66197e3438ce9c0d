package handlers

import (
	"context"
	"net/http"
	"time"

	"humint-backend/internal/models"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "degraded", Database: "unreachable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
