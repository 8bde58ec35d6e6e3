package services

import (
	"delivery-route-optimizer/internal/domain"
	"math"
)

// BuildTour orders all points using a greedy nearest-neighbor walk from the depot.
//
// At each step the unvisited point closest to the current position is chosen.
// Ties keep the first candidate in input order (strict less-than), so the
// result is fully determined by the registration order of the points.
// It does not attempt global route optimization; there is no backtracking.
func BuildTour(depot domain.Depot, points []domain.DeliveryPoint) domain.Tour {
	tour := make(domain.Tour, 0, len(points))
	if len(points) == 0 {
		return tour
	}

	visited := make([]bool, len(points))
	current := depot

	for len(tour) < len(points) {
		best := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum distance from the current position (greedy step).
		for i, p := range points {
			if visited[i] {
				continue
			}
			d := Distance(current, p.Coordinates())
			if best == -1 || d < minDistance {
				minDistance = d
				best = i
			}
		}

		visited[best] = true
		tour = append(tour, points[best])
		current = points[best].Coordinates()
	}

	return tour
}
