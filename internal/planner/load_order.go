package planner

import (
	"sort"

	"github.com/guttosm/load-planner/internal/domain/model"
)

// LoadOrder flattens the vehicle's slots into the crew loading sequence.
//
// Heavy-duty units go in first and fragile units last. Within a care class units
// are loaded front to back, then bottom to top. Sequence numbers start at 1.
func LoadOrder(v *VehicleBuilder) []model.PlacedItem {
	placed := make([]model.PlacedItem, 0, len(v.Units))
	for slotIdx, slot := range v.Slots {
		z := 0.0
		for layer := 0; layer < slot.Len(); layer++ {
			u := slot.Unit(layer)
			fp := slot.OrientedFootprint(layer)
			placed = append(placed, model.PlacedItem{
				Name:         u.Name,
				MassKg:       u.MassKg,
				VolumeM3:     u.VolumeM3,
				WidthM:       fp.WidthM,
				DepthM:       fp.DepthM,
				HeightM:      u.HeightM,
				Stackability: u.Stackability,
				Care:         u.Care,
				Slot:         slotIdx,
				X:            slot.X,
				Y:            slot.Y,
				Z:            z,
				Layer:        layer,
			})
			z += u.HeightM
		}
	}

	sort.SliceStable(placed, func(i, j int) bool {
		a, b := placed[i], placed[j]
		if pa, pb := a.Care.Priority(), b.Care.Priority(); pa != pb {
			return pa < pb
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Layer < b.Layer
	})

	for i := range placed {
		placed[i].Sequence = i + 1
	}
	return placed
}

// ToVehiclePlan freezes a builder into its output form.
func ToVehiclePlan(v *VehicleBuilder) model.VehiclePlan {
	return model.VehiclePlan{
		VehicleClass:  v.Class,
		LoadOrder:     LoadOrder(v),
		UnitCount:     len(v.Units),
		TotalVolumeM3: v.TotalVolumeM3,
		TotalMassKg:   v.TotalMassKg,
		CargoWidthM:   v.Class.CargoWidthM,
		CargoLengthM:  v.Class.CargoLengthM,
		CargoHeightM:  v.Class.CargoHeightM,
		OverCapacity:  v.OverCapacity,
	}
}
