package services

import "delivery-route-optimizer/internal/domain"

// Partition splits a tour into contiguous, capacity-bounded vehicle loads.
//
// Stops are taken strictly in tour order; a stop that would push the open
// vehicle over capacityKg closes it and opens the next vehicle. A vehicle is
// never closed empty, so a single stop heavier than the capacity is accepted
// alone and a non-positive capacity yields one vehicle per stop.
// Concatenating the result in vehicle order always reproduces the tour.
func Partition(tour domain.Tour, capacityKg float64) domain.VehicleAssignment {
	assignment := domain.VehicleAssignment{}
	if len(tour) == 0 {
		return assignment
	}

	open := domain.NewVehicle(1)
	for _, stop := range tour {
		if !open.Fits(stop, capacityKg) {
			assignment = append(assignment, domain.VehicleStops{VehicleID: open.VehicleID, Stops: open.Stops})
			open = domain.NewVehicle(open.VehicleID + 1)
		}
		open.Load(stop)
	}

	if !open.Empty() {
		assignment = append(assignment, domain.VehicleStops{VehicleID: open.VehicleID, Stops: open.Stops})
	}

	return assignment
}
