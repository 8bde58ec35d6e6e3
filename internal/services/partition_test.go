package services

import (
	"delivery-route-optimizer/internal/domain"
	"reflect"
	"testing"
)

func vehicleIDs(a domain.VehicleAssignment) [][]string {
	out := make([][]string, 0, len(a))
	for i, v := range a {
		if v.VehicleID != i+1 {
			panic("vehicle ids must be sequential from 1")
		}
		out = append(out, stopIDs(v.Stops))
	}
	return out
}

func TestPartitionFitsInOneVehicle(t *testing.T) {
	a := Partition(domain.Tour{pointA, pointB}, 500)

	if got, want := vehicleIDs(a), [][]string{{"A", "B"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("partition = %v, want %v", got, want)
	}
}

func TestPartitionOversizedSingleStop(t *testing.T) {
	a := Partition(domain.Tour{pointC}, 500)

	if got, want := vehicleIDs(a), [][]string{{"C"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("partition = %v, want %v", got, want)
	}
}

func TestPartitionOversizedStopMidTour(t *testing.T) {
	small1 := domain.DeliveryPoint{ID: "s1", WeightKg: 100}
	heavy := domain.DeliveryPoint{ID: "h", WeightKg: 900}
	small2 := domain.DeliveryPoint{ID: "s2", WeightKg: 100}

	a := Partition(domain.Tour{small1, heavy, small2}, 500)

	if got, want := vehicleIDs(a), [][]string{{"s1"}, {"h"}, {"s2"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("partition = %v, want %v", got, want)
	}
}

func TestPartitionExactCapacityStaysTogether(t *testing.T) {
	p1 := domain.DeliveryPoint{ID: "p1", WeightKg: 250}
	p2 := domain.DeliveryPoint{ID: "p2", WeightKg: 250}
	p3 := domain.DeliveryPoint{ID: "p3", WeightKg: 1}

	a := Partition(domain.Tour{p1, p2, p3}, 500)

	if got, want := vehicleIDs(a), [][]string{{"p1", "p2"}, {"p3"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("partition = %v, want %v", got, want)
	}
}

func TestPartitionNonPositiveCapacity(t *testing.T) {
	tour := domain.Tour{pointA, pointB, pointC}
	want := [][]string{{"A"}, {"B"}, {"C"}}

	for _, capacity := range []float64{0, -100} {
		if got := vehicleIDs(Partition(tour, capacity)); !reflect.DeepEqual(got, want) {
			t.Fatalf("capacity %v: partition = %v, want %v", capacity, got, want)
		}
	}
}

func TestPartitionEmptyTour(t *testing.T) {
	if a := Partition(domain.Tour{}, 500); len(a) != 0 {
		t.Fatalf("partition of empty tour has %d vehicles, want 0", len(a))
	}
}

func TestPartitionCoverageAndCapacity(t *testing.T) {
	for _, capacity := range []float64{0, 150, 500, 1200, 1e9} {
		tour := BuildTour(milanDepot, randomPoints(3, 120))
		a := Partition(tour, capacity)

		if !reflect.DeepEqual(a.Flatten(), tour) {
			t.Fatalf("capacity %v: concatenated vehicles do not reproduce the tour", capacity)
		}

		for _, v := range a {
			if len(v.Stops) == 0 {
				t.Fatalf("capacity %v: vehicle %d is empty", capacity, v.VehicleID)
			}
			if len(v.Stops) == 1 {
				continue
			}
			total := 0.0
			for _, s := range v.Stops {
				total += s.WeightKg
			}
			if total > capacity {
				t.Fatalf("capacity %v: vehicle %d carries %v kg over %d stops", capacity, v.VehicleID, total, len(v.Stops))
			}
		}
	}
}
