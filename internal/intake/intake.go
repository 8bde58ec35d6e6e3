// Package intake validates operator-entered delivery data before it reaches
// the optimizer, which assumes well-formed numeric fields.
package intake

import (
	"delivery-route-optimizer/internal/domain"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidPoint = errors.New("invalid delivery point")

// FieldError reports which field of a RawPoint failed validation.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidPoint }

// RawPoint is a delivery point as typed by an operator: every field is text.
type RawPoint struct {
	ID       string
	Name     string
	Lat      string
	Lon      string
	WeightKg string
}

// ParsePoint validates raw input and returns an immutable DeliveryPoint.
// A blank ID is replaced by a generated UUID; a blank name defaults to the ID.
func ParsePoint(raw RawPoint) (domain.DeliveryPoint, error) {
	lat, err := parseReal("lat", raw.Lat)
	if err != nil {
		return domain.DeliveryPoint{}, err
	}
	if lat < -90 || lat > 90 {
		return domain.DeliveryPoint{}, &FieldError{Field: "lat", Value: raw.Lat, Reason: "must be between -90 and 90"}
	}

	lon, err := parseReal("lon", raw.Lon)
	if err != nil {
		return domain.DeliveryPoint{}, err
	}
	if lon < -180 || lon > 180 {
		return domain.DeliveryPoint{}, &FieldError{Field: "lon", Value: raw.Lon, Reason: "must be between -180 and 180"}
	}

	weight, err := parseReal("weight_kg", raw.WeightKg)
	if err != nil {
		return domain.DeliveryPoint{}, err
	}
	if weight <= 0 {
		return domain.DeliveryPoint{}, &FieldError{Field: "weight_kg", Value: raw.WeightKg, Reason: "must be positive"}
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = uuid.NewString()
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = id
	}

	return domain.DeliveryPoint{
		ID:       id,
		Name:     name,
		Lat:      lat,
		Lon:      lon,
		WeightKg: weight,
	}, nil
}

// ParseCapacity parses a vehicle capacity in kilograms. Unparseable input
// falls back to fallback rather than failing; any real number, including zero
// or negative values, is returned as-is.
func ParseCapacity(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func parseReal(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: s, Reason: "must be a real number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Value: s, Reason: "must be finite"}
	}
	return v, nil
}
