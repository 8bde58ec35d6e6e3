package domain

// Tour is the full visiting order of all delivery points before fleet
// splitting. It is a permutation of the input point set.
type Tour []DeliveryPoint

// Return the point IDs in visiting order.
func (t Tour) IDs() []string {
	ids := make([]string, 0, len(t))
	for _, p := range t {
		ids = append(ids, p.ID)
	}
	return ids
}

// VehicleStops is the ordered, non-empty slice of the tour assigned to one vehicle.
type VehicleStops struct {
	VehicleID int
	Stops     []DeliveryPoint
}

// VehicleAssignment holds vehicles in index order; VehicleID of entry i is i+1.
type VehicleAssignment []VehicleStops

// Vehicle returns the stops of the vehicle with the given 1-based index.
func (a VehicleAssignment) Vehicle(id int) ([]DeliveryPoint, bool) {
	if id < 1 || id > len(a) {
		return nil, false
	}
	return a[id-1].Stops, true
}

// Flatten concatenates all vehicle stop lists in vehicle order.
func (a VehicleAssignment) Flatten() Tour {
	n := 0
	for _, v := range a {
		n += len(v.Stops)
	}
	out := make(Tour, 0, n)
	for _, v := range a {
		out = append(out, v.Stops...)
	}
	return out
}

// Per-vehicle totals produced by the route report.
type VehicleMetrics struct {
	VehicleID       int
	Stops           []DeliveryPoint
	StopCount       int
	TotalWeightKg   float64
	TotalDistanceKm float64
}

// Represents the summarized plan for a whole fleet.
// RouteMetrics is immutable planning data and contains no side effects.
type RouteMetrics struct {
	Vehicles        []VehicleMetrics
	VehicleCount    int
	TotalStops      int
	TotalWeightKg   float64
	TotalDistanceKm float64
}

// Plan is the complete output of one optimization run.
type Plan struct {
	Depot      Depot
	CapacityKg float64
	Tour       Tour
	Metrics    RouteMetrics
}
