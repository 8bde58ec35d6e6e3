package handlers

import (
	"delivery-route-optimizer/internal/api/dto"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/intake"
	"delivery-route-optimizer/internal/ports"
	"errors"
	"log"
	"net/http"
	"strings"
)

// PointHandler is the data-entry surface: it validates and registers
// delivery points and lists the current set.
type PointHandler struct {
	Repo ports.PointRepository
}

// Collection serves /points: GET lists, POST registers, DELETE clears.
func (h *PointHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodDelete:
		h.clear(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item serves DELETE /points/{id}.
func (h *PointHandler) Item(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/points/"))
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	err := h.Repo.DeletePoint(r.Context(), id)
	if errors.Is(err, domain.ErrPointNotFound) {
		writeError(w, r, http.StatusNotFound, "point not found")
		return
	}
	if err != nil {
		log.Printf("delete point failed: id=%q err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PointHandler) list(w http.ResponseWriter, r *http.Request) {
	points, err := h.Repo.ListPoints(r.Context())
	if err != nil {
		log.Printf("list points failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPointsResponse{
		Points: make([]dto.PointResponse, 0, len(points)),
	}
	for _, p := range points {
		res.Points = append(res.Points, dto.NewPointResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PointHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePointRequest
	if msg, ok := decodeBody(r, &req); !ok {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	point, err := intake.ParsePoint(req.Raw())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	err = h.Repo.AddPoint(r.Context(), point)
	if errors.Is(err, domain.ErrDuplicatePoint) {
		writeError(w, r, http.StatusConflict, "point id already registered")
		return
	}
	if err != nil {
		log.Printf("add point failed: id=%q err=%v", point.ID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewPointResponse(point))
}

func (h *PointHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Clear(r.Context()); err != nil {
		log.Printf("clear points failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
