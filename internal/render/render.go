// Package render turns a computed plan into operator-facing output. It holds
// no routing logic; every figure comes from the plan.
package render

import (
	"delivery-route-optimizer/internal/api/dto"
	"delivery-route-optimizer/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

var rule = strings.Repeat("-", 60)

// Write renders plan in the requested format (pretty or json).
func Write(w io.Writer, plan *domain.Plan, format string) error {
	switch format {
	case FormatJSON:
		return JSON(w, plan)
	case FormatPretty, "":
		return Text(w, plan)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func JSON(w io.Writer, plan *domain.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewPlanResponse(plan))
}

// Text writes the fleet report: depot at 4 decimals, weights and distances
// at 1 decimal.
func Text(w io.Writer, plan *domain.Plan) error {
	var b strings.Builder

	b.WriteString("\n=== ROUTE OPTIMIZATION REPORT ===\n")
	fmt.Fprintf(&b, "Depot: %.4f, %.4f\n", plan.Depot.Lat, plan.Depot.Lon)
	fmt.Fprintf(&b, "Total deliveries: %d\n", len(plan.Tour))
	fmt.Fprintf(&b, "Vehicles required: %d\n", plan.Metrics.VehicleCount)
	b.WriteString(rule + "\n")

	for _, v := range plan.Metrics.Vehicles {
		fmt.Fprintf(&b, "\nVEHICLE %d:\n", v.VehicleID)
		fmt.Fprintf(&b, "  Stops: %d\n", v.StopCount)
		fmt.Fprintf(&b, "  Total weight: %.1f kg\n", v.TotalWeightKg)
		fmt.Fprintf(&b, "  Estimated distance: %.1f km\n", v.TotalDistanceKm)
		b.WriteString("  Route:\n")
		for i, s := range v.Stops {
			fmt.Fprintf(&b, "    %d. %s (%.1f kg)\n", i+1, s.Name, s.WeightKg)
		}
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "FLEET TOTAL DISTANCE: %.1f km\n", plan.Metrics.TotalDistanceKm)

	_, err := io.WriteString(w, b.String())
	return err
}
