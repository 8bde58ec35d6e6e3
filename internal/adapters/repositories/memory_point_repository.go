package repositories

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"fmt"
	"sync"
)

// In-memory implementation of the PointRepository port, used when no
// DATABASE_URL is configured. Registration order is preserved.
type MemoryPointRepository struct {
	mu     sync.RWMutex
	points []domain.DeliveryPoint
	index  map[string]int
}

func NewMemoryPointRepository() *MemoryPointRepository {
	return &MemoryPointRepository{index: map[string]int{}}
}

// Return a snapshot of all registered points.
func (m *MemoryPointRepository) ListPoints(ctx context.Context) ([]domain.DeliveryPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.DeliveryPoint, len(m.points))
	copy(out, m.points)
	return out, nil
}

func (m *MemoryPointRepository) AddPoint(ctx context.Context, p domain.DeliveryPoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[p.ID]; ok {
		return fmt.Errorf("add point id=%q: %w", p.ID, domain.ErrDuplicatePoint)
	}
	m.index[p.ID] = len(m.points)
	m.points = append(m.points, p)
	return nil
}

func (m *MemoryPointRepository) DeletePoint(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return fmt.Errorf("delete point id=%q: %w", id, domain.ErrPointNotFound)
	}

	m.points = append(m.points[:i], m.points[i+1:]...)
	delete(m.index, id)
	for j := i; j < len(m.points); j++ {
		m.index[m.points[j].ID] = j
	}
	return nil
}

func (m *MemoryPointRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.points = nil
	m.index = map[string]int{}
	return nil
}
