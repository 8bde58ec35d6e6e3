package main

import (
	"context"
	"database/sql"
	"delivery-route-optimizer/internal/adapters/cache"
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/api"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/platform/db"
	"delivery-route-optimizer/internal/ports"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or memory, Redis or SQL cache) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "")

	fleet, err := config.LoadFleet(config.Get("FLEET_CONFIG", ""))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var (
		conn *sql.DB
		repo ports.PointRepository
	)
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err = db.Open(ctx, databaseURL, db.PoolConfigFromEnv())
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPostgresPointRepository(conn)
	} else {
		log.Println("DATABASE_URL not set; using in-memory point store")
		repo = repositories.NewMemoryPointRepository()
	}

	if seedPath != "" {
		added, err := repositories.SeedFromJSON(ctx, repo, seedPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded points path=%s added=%d", seedPath, added)
	}

	planCache, err := openPlanCache(ctx, conn)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(repo, planCache, fleet)

	log.Printf(
		"Server listening addr=:%s depot=%.4f,%.4f capacity_kg=%.1f",
		port, fleet.Depot.Lat, fleet.Depot.Lon, fleet.CapacityKg,
	)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openPlanCache prefers Redis, falls back to the Postgres plan_cache table,
// and runs without a cache when neither is configured.
func openPlanCache(ctx context.Context, conn *sql.DB) (ports.PlanCache, error) {
	ttl := config.GetDuration("PLAN_CACHE_TTL", 10*time.Minute)

	if redisURL := config.Get("REDIS_URL", ""); redisURL != "" {
		c, err := cache.NewRedisPlanCacheFromURL(ctx, redisURL, ttl)
		if err != nil {
			return nil, fmt.Errorf("open plan cache: %w", err)
		}
		return c, nil
	}

	if conn != nil {
		return cache.NewSQLPlanCache(conn, ttl), nil
	}

	return nil, nil
}
