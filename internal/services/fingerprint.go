package services

import (
	"crypto/sha256"
	"delivery-route-optimizer/internal/domain"
	"encoding/hex"
	"strconv"
)

// Fingerprint derives a stable cache key from every input that influences a
// plan: depot, capacity and the points in registration order.
func Fingerprint(depot domain.Depot, capacityKg float64, points []domain.DeliveryPoint) string {
	h := sha256.New()

	writeFloat := func(f float64) {
		h.Write(strconv.AppendFloat(nil, f, 'g', -1, 64))
		h.Write([]byte{0})
	}
	writeString := func(s string) {
		h.Write([]byte(strconv.Quote(s)))
		h.Write([]byte{0})
	}

	writeFloat(depot.Lat)
	writeFloat(depot.Lon)
	writeFloat(capacityKg)
	for _, p := range points {
		writeString(p.ID)
		writeString(p.Name)
		writeFloat(p.Lat)
		writeFloat(p.Lon)
		writeFloat(p.WeightKg)
	}

	return hex.EncodeToString(h.Sum(nil))
}
