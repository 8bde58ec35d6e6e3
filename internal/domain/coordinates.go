package domain

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Depot is the fixed origin and return point of every vehicle route.
type Depot = Coordinates
