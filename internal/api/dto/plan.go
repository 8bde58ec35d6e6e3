package dto

import "delivery-route-optimizer/internal/domain"

type DepotRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type PlanRequest struct {
	CapacityKg *float64      `json:"capacity_kg"`
	Depot      *DepotRequest `json:"depot"`
}

type DepotResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type VehicleResponse struct {
	VehicleID       int             `json:"vehicle_id"`
	StopCount       int             `json:"stop_count"`
	TotalWeightKg   float64         `json:"total_weight_kg"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	Stops           []PointResponse `json:"stops"`
}

type PlanResponse struct {
	Depot           DepotResponse     `json:"depot"`
	CapacityKg      float64           `json:"capacity_kg"`
	TotalPoints     int               `json:"total_points"`
	VehicleCount    int               `json:"vehicle_count"`
	TotalWeightKg   float64           `json:"total_weight_kg"`
	TotalDistanceKm float64           `json:"total_distance_km"`
	Tour            []string          `json:"tour"`
	Vehicles        []VehicleResponse `json:"vehicles"`
}

func NewPlanResponse(p *domain.Plan) PlanResponse {
	res := PlanResponse{
		Depot:           DepotResponse{Lat: p.Depot.Lat, Lon: p.Depot.Lon},
		CapacityKg:      p.CapacityKg,
		TotalPoints:     len(p.Tour),
		VehicleCount:    p.Metrics.VehicleCount,
		TotalWeightKg:   p.Metrics.TotalWeightKg,
		TotalDistanceKm: p.Metrics.TotalDistanceKm,
		Tour:            p.Tour.IDs(),
		Vehicles:        make([]VehicleResponse, 0, len(p.Metrics.Vehicles)),
	}

	for _, v := range p.Metrics.Vehicles {
		stops := make([]PointResponse, 0, len(v.Stops))
		for _, s := range v.Stops {
			stops = append(stops, NewPointResponse(s))
		}
		res.Vehicles = append(res.Vehicles, VehicleResponse{
			VehicleID:       v.VehicleID,
			StopCount:       v.StopCount,
			TotalWeightKg:   v.TotalWeightKg,
			TotalDistanceKm: v.TotalDistanceKm,
			Stops:           stops,
		})
	}

	return res
}
