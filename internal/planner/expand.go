package planner

import "github.com/guttosm/load-planner/internal/domain/model"

// ExpandUnits turns an inventory list into one PhysicalUnit per physical item.
// Output follows input order and copies of the same item are contiguous.
func ExpandUnits(items []model.InventoryItem) []model.PhysicalUnit {
	total := 0
	for _, it := range items {
		total += it.Units()
	}

	units := make([]model.PhysicalUnit, 0, total)
	for _, it := range items {
		unit := InferUnit(it.Name, it.VolumePerUnitM3())
		for i := 0; i < it.Units(); i++ {
			units = append(units, unit)
		}
	}
	return units
}
