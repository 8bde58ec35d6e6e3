package handlers

import (
	"delivery-route-optimizer/internal/ports"
	"log"
	"net/http"
)

type HealthHandler struct {
	Repo ports.PointRepository
}

type healthResponse struct {
	Status string `json:"status"`
	Points int    `json:"points"`
}

// Health reports liveness plus the number of stored delivery points. A failing
// repository turns the check into a 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	points, err := h.Repo.ListPoints(r.Context())
	if err != nil {
		log.Printf("health: list points: %v", err)
		writeJSON(w, r, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Points: len(points)})
}
