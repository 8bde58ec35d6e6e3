package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/metrics"
	"delivery-route-optimizer/internal/platform/obs"
	"delivery-route-optimizer/internal/ports"
	"errors"
	"fmt"
	"log"
	"time"
)

type PlanDeliveriesRequest struct {
	Depot      domain.Depot
	CapacityKg float64
}

// PlanDeliveries loads the registered points and computes a fleet plan.
//
// When a cache is supplied, plans are memoized by input fingerprint. Cache
// failures are logged and never fail the plan: the optimizer is cheap enough
// to recompute and is the source of truth.
func PlanDeliveries(
	ctx context.Context,
	req PlanDeliveriesRequest,
	repo ports.PointRepository,
	cache ports.PlanCache,
) (_ *domain.Plan, err error) {
	defer obs.Time(ctx, "plan.deliveries")(&err)

	if repo == nil {
		return nil, errors.New("plan deliveries: repository must be non-nil")
	}

	points, err := repo.ListPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: list points: %w", err)
	}

	key := Fingerprint(req.Depot, req.CapacityKg, points)

	if cache != nil {
		cached, ok, cerr := cache.GetPlan(ctx, key)
		switch {
		case cerr != nil:
			log.Printf("plan cache read failed: key=%s err=%v", key, cerr)
		case ok:
			metrics.PlanCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.PlanCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	plan := NewOptimizer(req.Depot).Plan(points, req.CapacityKg)
	metrics.PlanDuration.Observe(time.Since(start).Seconds())
	metrics.PlannedVehicles.Observe(float64(plan.Metrics.VehicleCount))

	if cache != nil {
		if err := cache.PutPlan(ctx, key, plan); err != nil {
			log.Printf("plan cache write failed: key=%s err=%v", key, err)
		}
	}

	return plan, nil
}
