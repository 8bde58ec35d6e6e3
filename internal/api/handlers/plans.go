package handlers

import (
	"bytes"
	"delivery-route-optimizer/internal/api/dto"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/ports"
	"delivery-route-optimizer/internal/render"
	"delivery-route-optimizer/internal/services"
	"log"
	"net/http"

	"golang.org/x/time/rate"
)

type PlanHandler struct {
	Repo    ports.PointRepository
	Cache   ports.PlanCache
	Fleet   config.Fleet
	Limiter *rate.Limiter
}

// Plan computes the tour, vehicle split and route report for the registered
// points. Depot and capacity default to the configured fleet; ?format=text
// returns the rendered text report instead of JSON.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Limiter != nil && !h.Limiter.Allow() {
		w.Header().Set("Retry-After", "1")
		writeError(w, r, http.StatusTooManyRequests, "too many plan requests")
		return
	}

	var req dto.PlanRequest
	if r.ContentLength != 0 {
		if msg, ok := decodeBody(r, &req); !ok {
			writeError(w, r, http.StatusBadRequest, msg)
			return
		}
	}

	fleet := h.Fleet
	if req.CapacityKg != nil {
		fleet.CapacityKg = *req.CapacityKg
	}
	if req.Depot != nil {
		if req.Depot.Lat != nil {
			fleet.Depot.Lat = *req.Depot.Lat
		}
		if req.Depot.Lon != nil {
			fleet.Depot.Lon = *req.Depot.Lon
		}
	}
	if err := fleet.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "text" {
		writeError(w, r, http.StatusBadRequest, "format must be json or text")
		return
	}

	svcReq := services.PlanDeliveriesRequest{
		Depot:      fleet.Depot,
		CapacityKg: fleet.CapacityKg,
	}

	plan, err := services.PlanDeliveries(r.Context(), svcReq, h.Repo, h.Cache)
	if err != nil {
		log.Printf("plan deliveries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if format == "text" {
		writeText(w, r, plan)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

func writeText(w http.ResponseWriter, r *http.Request, plan *domain.Plan) {
	var buf bytes.Buffer
	if err := render.Text(&buf, plan); err != nil {
		log.Printf("render plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
