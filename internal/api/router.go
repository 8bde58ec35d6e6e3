package api

import (
	"delivery-route-optimizer/internal/api/handlers"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/platform/metrics"
	"delivery-route-optimizer/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil when no plan cache is configured.
func NewRouter(repo ports.PointRepository, cache ports.PlanCache, fleet config.Fleet) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Repo: repo}
	pointHandler := &handlers.PointHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:    repo,
		Cache:   cache,
		Fleet:   fleet,
		Limiter: newPlanLimiter(fleet.PlanRatePerSec),
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/points", pointHandler.Collection)
	mux.HandleFunc("/points/", pointHandler.Item)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}

// newPlanLimiter returns nil (unlimited) for a zero rate.
func newPlanLimiter(perSec float64) *rate.Limiter {
	if perSec <= 0 {
		return nil
	}
	burst := int(perSec)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSec), burst)
}
