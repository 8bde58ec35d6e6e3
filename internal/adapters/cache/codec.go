package cache

import (
	"delivery-route-optimizer/internal/domain"
	"encoding/json"
	"fmt"
)

type pointRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	WeightKg float64 `json:"weight_kg"`
}

type vehicleRecord struct {
	VehicleID       int           `json:"vehicle_id"`
	Stops           []pointRecord `json:"stops"`
	TotalWeightKg   float64       `json:"total_weight_kg"`
	TotalDistanceKm float64       `json:"total_distance_km"`
}

// planRecord is the persisted form of a domain.Plan. Tour stops reference
// the vehicles' points, so only IDs are stored for the tour.
type planRecord struct {
	DepotLat        float64         `json:"depot_lat"`
	DepotLon        float64         `json:"depot_lon"`
	CapacityKg      float64         `json:"capacity_kg"`
	TourIDs         []string        `json:"tour"`
	Vehicles        []vehicleRecord `json:"vehicles"`
	TotalStops      int             `json:"total_stops"`
	TotalWeightKg   float64         `json:"total_weight_kg"`
	TotalDistanceKm float64         `json:"total_distance_km"`
}

func encodePlan(plan *domain.Plan) ([]byte, error) {
	rec := planRecord{
		DepotLat:        plan.Depot.Lat,
		DepotLon:        plan.Depot.Lon,
		CapacityKg:      plan.CapacityKg,
		TourIDs:         plan.Tour.IDs(),
		Vehicles:        make([]vehicleRecord, 0, len(plan.Metrics.Vehicles)),
		TotalStops:      plan.Metrics.TotalStops,
		TotalWeightKg:   plan.Metrics.TotalWeightKg,
		TotalDistanceKm: plan.Metrics.TotalDistanceKm,
	}

	for _, v := range plan.Metrics.Vehicles {
		stops := make([]pointRecord, 0, len(v.Stops))
		for _, s := range v.Stops {
			stops = append(stops, pointRecord{ID: s.ID, Name: s.Name, Lat: s.Lat, Lon: s.Lon, WeightKg: s.WeightKg})
		}
		rec.Vehicles = append(rec.Vehicles, vehicleRecord{
			VehicleID:       v.VehicleID,
			Stops:           stops,
			TotalWeightKg:   v.TotalWeightKg,
			TotalDistanceKm: v.TotalDistanceKm,
		})
	}

	return json.Marshal(rec)
}

func decodePlan(b []byte) (*domain.Plan, error) {
	var rec planRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}

	byID := make(map[string]domain.DeliveryPoint, rec.TotalStops)
	metrics := domain.RouteMetrics{
		Vehicles:        make([]domain.VehicleMetrics, 0, len(rec.Vehicles)),
		VehicleCount:    len(rec.Vehicles),
		TotalStops:      rec.TotalStops,
		TotalWeightKg:   rec.TotalWeightKg,
		TotalDistanceKm: rec.TotalDistanceKm,
	}

	for _, v := range rec.Vehicles {
		stops := make([]domain.DeliveryPoint, 0, len(v.Stops))
		for _, s := range v.Stops {
			p := domain.DeliveryPoint{ID: s.ID, Name: s.Name, Lat: s.Lat, Lon: s.Lon, WeightKg: s.WeightKg}
			byID[p.ID] = p
			stops = append(stops, p)
		}
		metrics.Vehicles = append(metrics.Vehicles, domain.VehicleMetrics{
			VehicleID:       v.VehicleID,
			Stops:           stops,
			StopCount:       len(stops),
			TotalWeightKg:   v.TotalWeightKg,
			TotalDistanceKm: v.TotalDistanceKm,
		})
	}

	tour := make(domain.Tour, 0, len(rec.TourIDs))
	for _, id := range rec.TourIDs {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("decode plan: tour references unknown point %q", id)
		}
		tour = append(tour, p)
	}

	return &domain.Plan{
		Depot:      domain.Depot{Lat: rec.DepotLat, Lon: rec.DepotLon},
		CapacityKg: rec.CapacityKg,
		Tour:       tour,
		Metrics:    metrics,
	}, nil
}
