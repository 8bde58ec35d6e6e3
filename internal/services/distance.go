package services

import (
	"delivery-route-optimizer/internal/domain"
	"math"
)

// KmPerDegree approximates the length of one degree of latitude.
const KmPerDegree = 111.0

// Distance returns an approximate planar distance in kilometers from p1 to p2.
//
// The longitude difference is scaled by the cosine of p1's latitude only, so
// Distance(a, b) and Distance(b, a) differ whenever a.Lat != b.Lat. Every
// route and partition result depends on this exact formula; callers that
// chain legs must always pass the current position as p1.
// Valid only over short ranges; this is not a great-circle distance.
func Distance(p1, p2 domain.Coordinates) float64 {
	dLat := (p2.Lat - p1.Lat) * KmPerDegree
	dLon := (p2.Lon - p1.Lon) * KmPerDegree * math.Cos(p1.Lat*math.Pi/180)

	return math.Sqrt(dLat*dLat + dLon*dLon)
}
