package dto

import (
	"bytes"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/intake"
	"encoding/json"
	"fmt"
	"strconv"
)

type PointResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	WeightKg float64 `json:"weight_kg"`
}

type ListPointsResponse struct {
	Points []PointResponse `json:"points"`
}

func NewPointResponse(p domain.DeliveryPoint) PointResponse {
	return PointResponse{ID: p.ID, Name: p.Name, Lat: p.Lat, Lon: p.Lon, WeightKg: p.WeightKg}
}

// Numeric accepts either a JSON number or a JSON string and keeps the raw
// text, so validation happens once in intake for both forms.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("numeric field: %w", err)
	}
	*n = Numeric(b)
	return nil
}

type CreatePointRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      Numeric `json:"lat"`
	Lon      Numeric `json:"lon"`
	WeightKg Numeric `json:"weight_kg"`
}

func (r CreatePointRequest) Raw() intake.RawPoint {
	return intake.RawPoint{
		ID:       r.ID,
		Name:     r.Name,
		Lat:      string(r.Lat),
		Lon:      string(r.Lon),
		WeightKg: string(r.WeightKg),
	}
}
