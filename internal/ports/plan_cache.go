package ports

import (
	"context"
	"delivery-route-optimizer/internal/domain"
)

// Optional memoization of computed plans keyed by an input fingerprint.
// A miss is reported as (nil, false, nil).
type PlanCache interface {
	GetPlan(ctx context.Context, key string) (*domain.Plan, bool, error)
	PutPlan(ctx context.Context, key string, plan *domain.Plan) error
}
