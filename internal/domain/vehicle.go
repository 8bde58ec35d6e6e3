package domain

// Vehicle is an open capacity-partition unit: the stops accumulated so far
// and their running weight.
type Vehicle struct {
	VehicleID int
	LoadKg    float64
	Stops     []DeliveryPoint
}

func NewVehicle(id int) *Vehicle {
	return &Vehicle{VehicleID: id}
}

// Fits reports whether the stop can join the vehicle without exceeding
// capacityKg. An empty vehicle accepts any stop, so a stop heavier than the
// capacity still gets a vehicle of its own.
func (v *Vehicle) Fits(p DeliveryPoint, capacityKg float64) bool {
	if len(v.Stops) == 0 {
		return true
	}
	return v.LoadKg+p.WeightKg <= capacityKg
}

// Load appends a stop and adds its weight to the running total.
func (v *Vehicle) Load(p DeliveryPoint) {
	v.Stops = append(v.Stops, p)
	v.LoadKg += p.WeightKg
}

func (v *Vehicle) Empty() bool { return len(v.Stops) == 0 }
