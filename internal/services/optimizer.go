package services

import "delivery-route-optimizer/internal/domain"

// Optimizer runs the routing pipeline for a single fixed depot.
// It holds no other state and is safe for concurrent use.
type Optimizer struct {
	depot domain.Depot
}

func NewOptimizer(depot domain.Depot) *Optimizer {
	return &Optimizer{depot: depot}
}

func (o *Optimizer) Depot() domain.Depot { return o.depot }

// Tour returns the nearest-neighbor visiting order for points.
func (o *Optimizer) Tour(points []domain.DeliveryPoint) domain.Tour {
	return BuildTour(o.depot, points)
}

// Assign builds the tour and splits it across vehicles of capacityKg.
func (o *Optimizer) Assign(points []domain.DeliveryPoint, capacityKg float64) domain.VehicleAssignment {
	return Partition(o.Tour(points), capacityKg)
}

// Plan runs tour construction, partitioning and the route report in one pass.
func (o *Optimizer) Plan(points []domain.DeliveryPoint, capacityKg float64) *domain.Plan {
	tour := o.Tour(points)
	assignment := Partition(tour, capacityKg)

	return &domain.Plan{
		Depot:      o.depot,
		CapacityKg: capacityKg,
		Tour:       tour,
		Metrics:    Summarize(o.depot, assignment),
	}
}
