package ports

import (
	"context"
	"delivery-route-optimizer/internal/domain"
)

// Port: a boundary for storing and retrieving registered DeliveryPoints.
// Implementations return points in registration order, which determines
// nearest-neighbor tie-breaking.
type PointRepository interface {
	// Retrieve all points available for routing.
	ListPoints(ctx context.Context) ([]domain.DeliveryPoint, error)
	// Register a point; returns domain.ErrDuplicatePoint if the ID exists.
	AddPoint(ctx context.Context, p domain.DeliveryPoint) error
	// Remove a point; returns domain.ErrPointNotFound if the ID is unknown.
	DeletePoint(ctx context.Context, id string) error
	// Remove every registered point.
	Clear(ctx context.Context) error
}
