package cache

import (
	"context"
	"database/sql"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/obs"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLPlanCache is a Postgres-backed cache of computed plans keyed by input
// fingerprint. Used when Postgres is configured and Redis is not. Rows older
// than TTL are neither returned nor kept; a zero TTL disables expiry.
type SQLPlanCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLPlanCache(db *sql.DB, ttl time.Duration) *SQLPlanCache {
	return &SQLPlanCache{DB: db, TTL: ttl}
}

// ttlSeconds is bound as the make_interval argument; 0 means no expiry.
func (s *SQLPlanCache) ttlSeconds() float64 {
	if s.TTL <= 0 {
		return 0
	}
	return s.TTL.Seconds()
}

// Fetch a cached plan by fingerprint.
func (s *SQLPlanCache) GetPlan(ctx context.Context, fingerprint string) (_ *domain.Plan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("plan cache: db is nil")
	}

	if strings.TrimSpace(fingerprint) == "" {
		return nil, false, errors.New("get plan cache: fingerprint must not be empty")
	}

	var payload []byte
	err = s.DB.QueryRowContext(ctx, `
	SELECT payload
	FROM plan_cache
	WHERE fingerprint = $1
	  AND ($2::float8 = 0 OR created_at > now() - make_interval(secs => $2::float8));
	`, fingerprint, s.ttlSeconds()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: query plan_cache table: %w", err)
	}

	plan, err := decodePlan(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}
	return plan, true, nil
}

// Store a computed plan, replacing any previous entry for the fingerprint.
func (s *SQLPlanCache) PutPlan(ctx context.Context, fingerprint string, plan *domain.Plan) error {
	if s.DB == nil {
		return errors.New("plan cache: db is nil")
	}

	if strings.TrimSpace(fingerprint) == "" {
		return errors.New("insert plan cache: fingerprint must not be empty")
	}

	payload, err := encodePlan(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache: encode: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT INTO plan_cache (fingerprint, payload)
	VALUES ($1, $2)
	ON CONFLICT (fingerprint) DO UPDATE
	SET payload = EXCLUDED.payload,
		created_at = now();
	`, fingerprint, payload); err != nil {
		return fmt.Errorf("insert plan cache fingerprint=%q: %w", fingerprint, err)
	}

	if ttl := s.ttlSeconds(); ttl > 0 {
		if _, err := s.DB.ExecContext(ctx, `
		DELETE FROM plan_cache
		WHERE created_at <= now() - make_interval(secs => $1::float8);
		`, ttl); err != nil {
			return fmt.Errorf("prune plan cache: %w", err)
		}
	}

	return nil
}
