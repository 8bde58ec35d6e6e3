package cli

import (
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/intake"
	"delivery-route-optimizer/internal/render"
	"delivery-route-optimizer/internal/services"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	var pointsPath string
	var configPath string
	var capacity string
	var depotLat float64
	var depotLon float64
	var format string

	c := &cobra.Command{
		Use:   "plan",
		Short: "Build the delivery tour, split it across vehicles and print the route report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fleet, err := config.LoadFleet(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("capacity") {
				fleet.CapacityKg = intake.ParseCapacity(capacity, config.DefaultCapacityKg)
			}
			if cmd.Flags().Changed("depot-lat") {
				fleet.Depot.Lat = depotLat
			}
			if cmd.Flags().Changed("depot-lon") {
				fleet.Depot.Lon = depotLon
			}
			if err := fleet.Validate(); err != nil {
				return err
			}

			points, err := repositories.LoadPointsJSON(pointsPath)
			if err != nil {
				return err
			}

			start := time.Now()
			plan := services.NewOptimizer(fleet.Depot).Plan(points, fleet.CapacityKg)
			slog.Debug("plan.computed",
				"points", len(points),
				"vehicles", plan.Metrics.VehicleCount,
				"capacity_kg", fleet.CapacityKg,
				"dur", time.Since(start),
			)

			return render.Write(cmd.OutOrStdout(), plan, format)
		},
	}

	c.Flags().StringVarP(&pointsPath, "points", "p", "", "JSON file with delivery points (required)")
	c.Flags().StringVarP(&configPath, "config", "c", "", "YAML fleet configuration (optional)")
	c.Flags().StringVar(&capacity, "capacity", "", "Vehicle capacity in kg (unparseable values fall back to 500)")
	c.Flags().Float64Var(&depotLat, "depot-lat", 0, "Depot latitude (overrides config)")
	c.Flags().Float64Var(&depotLon, "depot-lon", 0, "Depot longitude (overrides config)")
	c.Flags().StringVar(&format, "format", render.FormatPretty, "Output format: pretty|json")

	_ = c.MarkFlagRequired("points")
	return c
}
