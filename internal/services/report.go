package services

import "delivery-route-optimizer/internal/domain"

// RouteDistance returns the round-trip distance depot -> stops... -> depot.
// Each leg is measured from the current position, matching the tour builder.
// An empty stop list has no route and measures zero.
func RouteDistance(depot domain.Depot, stops []domain.DeliveryPoint) float64 {
	if len(stops) == 0 {
		return 0
	}

	total := 0.0
	current := depot
	for _, s := range stops {
		next := s.Coordinates()
		total += Distance(current, next)
		current = next
	}

	// Return leg to the depot.
	total += Distance(current, depot)

	return total
}

// Summarize computes per-vehicle and fleet-wide totals for an assignment.
func Summarize(depot domain.Depot, assignment domain.VehicleAssignment) domain.RouteMetrics {
	metrics := domain.RouteMetrics{
		Vehicles:     make([]domain.VehicleMetrics, 0, len(assignment)),
		VehicleCount: len(assignment),
	}

	for _, v := range assignment {
		weight := 0.0
		for _, s := range v.Stops {
			weight += s.WeightKg
		}
		dist := RouteDistance(depot, v.Stops)

		metrics.Vehicles = append(metrics.Vehicles, domain.VehicleMetrics{
			VehicleID:       v.VehicleID,
			Stops:           v.Stops,
			StopCount:       len(v.Stops),
			TotalWeightKg:   weight,
			TotalDistanceKm: dist,
		})
		metrics.TotalStops += len(v.Stops)
		metrics.TotalWeightKg += weight
		metrics.TotalDistanceKm += dist
	}

	return metrics
}
