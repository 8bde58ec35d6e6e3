package domain

import "fmt"

// Represents a single delivery stop registered for routing.
// A DeliveryPoint is immutable once registered; the ID is opaque and only
// required to be unique within one point set.
type DeliveryPoint struct {
	ID       string
	Name     string
	Lat      float64
	Lon      float64
	WeightKg float64
}

// Return the point position for distance computations.
func (p DeliveryPoint) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lon: p.Lon}
}

func (p DeliveryPoint) String() string {
	return fmt.Sprintf("%s (%gkg)", p.Name, p.WeightKg)
}
