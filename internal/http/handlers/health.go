package handlers

import (
	"net/http"
	"time"

	"github.com/weiminglau/family-tree-be/internal/http/respond"
)

// HealthHandler serves the welcome route and a basic liveness endpoint.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates the handler with the process start time.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Welcome answers the API root.
func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Family Tree API",
	})
}

// Health reports uptime and basic status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
