package config

import (
	"delivery-route-optimizer/internal/domain"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDepotLat       = 45.4642
	DefaultDepotLon       = 9.1900
	DefaultCapacityKg     = 500.0
	DefaultPlanRatePerSec = 5.0
)

// Fleet describes the depot and vehicle capacity a planner runs with.
type Fleet struct {
	Depot          domain.Depot
	CapacityKg     float64
	PlanRatePerSec float64
}

type yamlFleet struct {
	Depot *struct {
		Lat *float64 `yaml:"lat"`
		Lon *float64 `yaml:"lon"`
	} `yaml:"depot"`
	CapacityKg     *float64 `yaml:"capacity_kg"`
	PlanRatePerSec *float64 `yaml:"plan_rate_per_sec"`
}

func DefaultFleet() Fleet {
	return Fleet{
		Depot:          domain.Depot{Lat: DefaultDepotLat, Lon: DefaultDepotLon},
		CapacityKg:     DefaultCapacityKg,
		PlanRatePerSec: DefaultPlanRatePerSec,
	}
}

// LoadFleet builds a Fleet from defaults, then the YAML file at path (if
// path is non-empty), then DEPOT_LAT, DEPOT_LON, VEHICLE_CAPACITY_KG and
// PLAN_RATE_PER_SEC environment overrides.
func LoadFleet(path string) (Fleet, error) {
	f := DefaultFleet()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Fleet{}, fmt.Errorf("load fleet: read %q: %w", path, err)
		}
		if err := applyYAML(&f, b); err != nil {
			return Fleet{}, fmt.Errorf("load fleet: parse %q: %w", path, err)
		}
	}

	f.Depot.Lat = GetFloat("DEPOT_LAT", f.Depot.Lat)
	f.Depot.Lon = GetFloat("DEPOT_LON", f.Depot.Lon)
	f.CapacityKg = GetFloat("VEHICLE_CAPACITY_KG", f.CapacityKg)
	f.PlanRatePerSec = GetFloat("PLAN_RATE_PER_SEC", f.PlanRatePerSec)

	if err := f.Validate(); err != nil {
		return Fleet{}, fmt.Errorf("load fleet: %w", err)
	}

	return f, nil
}

func applyYAML(f *Fleet, b []byte) error {
	var dto yamlFleet
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return err
	}

	if dto.Depot != nil {
		if dto.Depot.Lat != nil {
			f.Depot.Lat = *dto.Depot.Lat
		}
		if dto.Depot.Lon != nil {
			f.Depot.Lon = *dto.Depot.Lon
		}
	}
	if dto.CapacityKg != nil {
		f.CapacityKg = *dto.CapacityKg
	}
	if dto.PlanRatePerSec != nil {
		f.PlanRatePerSec = *dto.PlanRatePerSec
	}
	return nil
}

// Validate checks the depot lies on the globe. Capacity is not bounded:
// a non-positive capacity means one vehicle per stop.
func (f Fleet) Validate() error {
	if !finite(f.Depot.Lat) || !finite(f.Depot.Lon) {
		return errors.New("depot coordinates must be finite")
	}
	if !finite(f.CapacityKg) {
		return errors.New("capacity_kg must be finite")
	}
	if !finite(f.PlanRatePerSec) {
		return errors.New("plan_rate_per_sec must be finite")
	}
	if f.Depot.Lat < -90 || f.Depot.Lat > 90 {
		return errors.New("depot latitude must be between -90 and 90")
	}
	if f.Depot.Lon < -180 || f.Depot.Lon > 180 {
		return errors.New("depot longitude must be between -180 and 180")
	}
	if f.PlanRatePerSec < 0 {
		return errors.New("plan_rate_per_sec must be >= 0")
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
