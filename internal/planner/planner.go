package planner

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/guttosm/load-planner/internal/domain/model"
)

// Plan packs the inventory into vehicles and returns each vehicle with its
// loading sequence, in the order the vehicles were opened.
// A nil or empty catalog means model.DefaultVehicleCatalog.
func Plan(items []model.InventoryItem, catalog []model.VehicleClass) []model.VehiclePlan {
	builders := Pack(ExpandUnits(items), catalog)

	plans := make([]model.VehiclePlan, 0, len(builders))
	for _, b := range builders {
		plans = append(plans, ToVehiclePlan(b))
	}
	return plans
}

// PlanWithSummary runs Plan and attaches the summary of the result.
func PlanWithSummary(items []model.InventoryItem, catalog []model.VehicleClass) model.PlanResult {
	vehicles := Plan(items, catalog)
	return model.PlanResult{
		Vehicles: vehicles,
		Summary:  Summarize(items, vehicles),
	}
}

// Summarize builds the dashboard summary of a plan. Per-vehicle volume is rounded
// to 3 decimals and mass to 1.
func Summarize(items []model.InventoryItem, vehicles []model.VehiclePlan) model.PlanSummary {
	summary := model.PlanSummary{
		Vehicles:     make([]model.VehicleSummary, 0, len(vehicles)),
		VehicleCount: len(vehicles),
	}

	for _, it := range items {
		summary.TotalItems += it.Units()
	}

	volumeUse := make([]float64, 0, len(vehicles))
	weightUse := make([]float64, 0, len(vehicles))
	for _, v := range vehicles {
		summary.Vehicles = append(summary.Vehicles, model.VehicleSummary{
			Type:          v.VehicleClass.Name,
			Count:         v.UnitCount,
			TotalVolumeM3: round(v.TotalVolumeM3, 3),
			TotalMassKg:   round(v.TotalMassKg, 1),
		})
		summary.TotalVolumeM3 += v.TotalVolumeM3
		summary.TotalMassKg += v.TotalMassKg
		volumeUse = append(volumeUse, ratio(v.TotalVolumeM3, v.VehicleClass.MaxVolumeM3))
		weightUse = append(weightUse, ratio(v.TotalMassKg, v.VehicleClass.MaxWeightKg))
	}

	summary.TotalVolumeM3 = round(summary.TotalVolumeM3, 3)
	summary.TotalMassKg = round(summary.TotalMassKg, 1)
	if len(vehicles) > 0 {
		summary.MeanVolumeUtilization = round(stat.Mean(volumeUse, nil), 3)
		summary.MeanWeightUtilization = round(stat.Mean(weightUse, nil), 3)
	}
	return summary
}

func ratio(used, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return used / limit
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
