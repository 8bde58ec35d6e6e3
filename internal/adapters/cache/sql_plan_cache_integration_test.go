//go:build postgres_integration

package cache

import (
	"context"
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/platform/db"
	"os"
	"testing"
	"time"
)

func TestSQLPlanCacheExpiry(t *testing.T) {
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

	if err := repositories.InitSchema(ctx, conn); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `DELETE FROM plan_cache`); err != nil {
		t.Fatalf("clear plan_cache: %v", err)
	}

	c := NewSQLPlanCache(conn, time.Minute)
	plan := samplePlan()

	if err := c.PutPlan(ctx, "old", plan); err != nil {
		t.Fatalf("PutPlan(old): %v", err)
	}
	if _, ok, err := c.GetPlan(ctx, "old"); err != nil || !ok {
		t.Fatalf("GetPlan(old) = ok %v, err %v; want hit", ok, err)
	}

	if _, err := conn.ExecContext(ctx, `UPDATE plan_cache SET created_at = now() - interval '1 hour' WHERE fingerprint = 'old'`); err != nil {
		t.Fatalf("age row: %v", err)
	}
	if _, ok, err := c.GetPlan(ctx, "old"); err != nil || ok {
		t.Fatalf("GetPlan(expired) = ok %v, err %v; want miss", ok, err)
	}

	if err := c.PutPlan(ctx, "new", plan); err != nil {
		t.Fatalf("PutPlan(new): %v", err)
	}

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT count(*) FROM plan_cache WHERE fingerprint = 'old'`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expired rows after put = %d, want 0", n)
	}
}
