//go:build postgres_integration

package repositories

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/db"
	"errors"
	"os"
	"testing"
)

func TestPostgresPointRepository(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, dsn, db.PoolConfigFromEnv())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()
	if err := InitSchema(ctx, conn); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	repo := NewPostgresPointRepository(conn)
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	for _, id := range []string{"z", "a"} {
		if err := repo.AddPoint(ctx, domain.DeliveryPoint{ID: id, Name: id, Lat: 45, Lon: 9, WeightKg: 10}); err != nil {
			t.Fatalf("AddPoint(%s): %v", id, err)
		}
	}
	if err := repo.AddPoint(ctx, domain.DeliveryPoint{ID: "z", Name: "z", WeightKg: 1}); !errors.Is(err, domain.ErrDuplicatePoint) {
		t.Fatalf("duplicate add err = %v, want ErrDuplicatePoint", err)
	}

	points, err := repo.ListPoints(ctx)
	if err != nil {
		t.Fatalf("ListPoints: %v", err)
	}
	if len(points) != 2 || points[0].ID != "z" || points[1].ID != "a" {
		t.Fatalf("points = %v, want [z a] in registration order", points)
	}

	if err := repo.DeletePoint(ctx, "missing"); !errors.Is(err, domain.ErrPointNotFound) {
		t.Fatalf("delete missing err = %v, want ErrPointNotFound", err)
	}
}
