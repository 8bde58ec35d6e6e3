package repositories

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/intake"
	"delivery-route-optimizer/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// PointSeed is the JSON shape of a seed or points file entry. Numeric fields
// are pointers so an absent value is told apart from zero.
type PointSeed struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	WeightKg *float64 `json:"weight_kg"`
}

// LoadPointsJSON reads and validates a JSON array of points. File order is
// kept since it decides nearest-neighbor tie-breaks.
func LoadPointsJSON(jsonPath string) ([]domain.DeliveryPoint, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load points: read %q: %w", jsonPath, err)
	}

	var data []PointSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load points: parse json: %w", err)
	}

	points := make([]domain.DeliveryPoint, 0, len(data))
	for i, item := range data {
		p, err := intake.ParsePoint(item.Raw())
		if err != nil {
			return nil, fmt.Errorf("load points: entry #%d: %w", i+1, err)
		}
		points = append(points, p)
	}

	return points, nil
}

// Raw converts a seed entry to operator-form input for validation. Absent
// numbers become empty strings, which intake rejects.
func (s PointSeed) Raw() intake.RawPoint {
	format := func(f *float64) string {
		if f == nil {
			return ""
		}
		return strconv.FormatFloat(*f, 'g', -1, 64)
	}
	return intake.RawPoint{
		ID:       s.ID,
		Name:     s.Name,
		Lat:      format(s.Lat),
		Lon:      format(s.Lon),
		WeightKg: format(s.WeightKg),
	}
}

// Populate the repository with points from a JSON file. Points that are
// already registered are skipped, so seeding is idempotent.
func SeedFromJSON(ctx context.Context, repo ports.PointRepository, jsonPath string) (int, error) {
	points, err := LoadPointsJSON(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed points: %w", err)
	}

	added := 0
	for _, p := range points {
		err := repo.AddPoint(ctx, p)
		if errors.Is(err, domain.ErrDuplicatePoint) {
			continue
		}
		if err != nil {
			return added, fmt.Errorf("seed points: insert point_id=%q: %w", p.ID, err)
		}
		added++
	}

	return added, nil
}
