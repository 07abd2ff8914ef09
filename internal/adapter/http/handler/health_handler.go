package handler

import (
	"net/http"
	"strconv"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	service ReportService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service ReportService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once the event log has been replayed into memory.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":         "ready",
		"last_processed": strconv.FormatInt(h.service.LastProcessed(), 10),
	})
}
