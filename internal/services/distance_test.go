package services

import (
	"delivery-route-optimizer/internal/domain"
	"math"
	"testing"
)

const eps = 1e-9

func TestDistanceAxisAligned(t *testing.T) {
	origin := domain.Coordinates{Lat: 0, Lon: 0}

	if d := Distance(origin, domain.Coordinates{Lat: 1, Lon: 0}); math.Abs(d-111) > eps {
		t.Fatalf("distance one degree north = %v, want 111", d)
	}
	if d := Distance(origin, domain.Coordinates{Lat: 0, Lon: 1}); math.Abs(d-111) > eps {
		t.Fatalf("distance one degree east at equator = %v, want 111", d)
	}
	if d := Distance(origin, origin); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceScalesLongitudeByFirstLatitude(t *testing.T) {
	p1 := domain.Coordinates{Lat: 60, Lon: 0}
	p2 := domain.Coordinates{Lat: 60, Lon: 1}

	// cos(60°) = 0.5
	if d := Distance(p1, p2); math.Abs(d-55.5) > 1e-6 {
		t.Fatalf("distance = %v, want 55.5", d)
	}
}

func TestDistanceIsAsymmetric(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 60, Lon: 1}

	ab := Distance(a, b)
	ba := Distance(b, a)

	wantAB := math.Hypot(60*111, 111)
	wantBA := math.Hypot(-60*111, -111*0.5)

	if math.Abs(ab-wantAB) > 1e-6 {
		t.Fatalf("distance(a,b) = %v, want %v", ab, wantAB)
	}
	if math.Abs(ba-wantBA) > 1e-6 {
		t.Fatalf("distance(b,a) = %v, want %v", ba, wantBA)
	}
	if ab == ba {
		t.Fatalf("distance(a,b) == distance(b,a) = %v; expected asymmetry when latitudes differ", ab)
	}
}

func TestDistanceSymmetricOnSameLatitude(t *testing.T) {
	a := domain.Coordinates{Lat: 45, Lon: 9}
	b := domain.Coordinates{Lat: 45, Lon: 10}

	if Distance(a, b) != Distance(b, a) {
		t.Fatalf("distance should be symmetric when latitudes match")
	}
}
