package services

import (
	"delivery-route-optimizer/internal/domain"
	"math/rand"
	"strconv"
)

var milanDepot = domain.Depot{Lat: 45.4642, Lon: 9.1900}

var (
	pointA = domain.DeliveryPoint{ID: "A", Name: "Cliente A", Lat: 45.4641, Lon: 9.1919, WeightKg: 150}
	pointB = domain.DeliveryPoint{ID: "B", Name: "Cliente B", Lat: 45.5845, Lon: 9.2744, WeightKg: 200}
	pointC = domain.DeliveryPoint{ID: "C", Name: "Cliente C", Lat: 45.6983, Lon: 9.6773, WeightKg: 600}
	pointD = domain.DeliveryPoint{ID: "D", Name: "Cliente D", Lat: 45.6983, Lon: 9.6773, WeightKg: 2000}
)

func randomPoints(seed int64, n int) []domain.DeliveryPoint {
	r := rand.New(rand.NewSource(seed))
	points := make([]domain.DeliveryPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, domain.DeliveryPoint{
			ID:       "P" + strconv.Itoa(i),
			Name:     "Point " + strconv.Itoa(i),
			Lat:      45 + r.Float64(),
			Lon:      9 + r.Float64(),
			WeightKg: 1 + r.Float64()*400,
		})
	}
	return points
}

func stopIDs(stops []domain.DeliveryPoint) []string {
	return domain.Tour(stops).IDs()
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
