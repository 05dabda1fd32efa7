package planner

import (
	"math"
	"sort"

	"github.com/guttosm/load-planner/internal/domain/model"
)

const (
	// fitTolerance absorbs floating-point error in footprint and height checks.
	fitTolerance = 0.01
	// capacityEpsilon absorbs summation error in weight and volume checks.
	capacityEpsilon = 1e-9
)

// stackedUnit is a unit inside a slot, in the orientation it was placed.
type stackedUnit struct {
	unit      model.PhysicalUnit
	footprint model.Footprint
}

// FloorSlot is a rectangle on the cargo floor holding a vertical stack of units.
// The first unit in the stack is the bottom one.
type FloorSlot struct {
	X           float64
	Y           float64
	Footprint   model.Footprint
	UsedHeightM float64
	stack       []stackedUnit
}

// Len returns the number of units stacked in the slot.
func (s *FloorSlot) Len() int {
	return len(s.stack)
}

// Unit returns the unit at the given 0-based layer.
func (s *FloorSlot) Unit(layer int) model.PhysicalUnit {
	return s.stack[layer].unit
}

// OrientedFootprint returns the footprint of the unit at layer as it was placed.
func (s *FloorSlot) OrientedFootprint(layer int) model.Footprint {
	return s.stack[layer].footprint
}

func (s *FloorSlot) top() model.PhysicalUnit {
	return s.stack[len(s.stack)-1].unit
}

func (s *FloorSlot) push(u model.PhysicalUnit, fp model.Footprint) {
	s.stack = append(s.stack, stackedUnit{unit: u, footprint: fp})
	s.UsedHeightM += u.HeightM
}

// canHold reports whether u may be placed on top of the current stack and the
// orientation it would take.
func (s *FloorSlot) canHold(u model.PhysicalUnit, cargoHeightM float64) (model.Footprint, bool) {
	if len(s.stack) == 0 {
		return model.Footprint{}, false
	}
	if u.Stackability == model.StackNone {
		return model.Footprint{}, false
	}

	top := s.top()
	if s.stack[0].unit.Stackability == model.StackNone ||
		top.Care == model.CareFragile ||
		top.Stackability == model.StackNone ||
		top.Stackability == model.StackTopOnly {
		return model.Footprint{}, false
	}
	if u.Stackability == model.StackBase && top.Stackability != model.StackBase {
		return model.Footprint{}, false
	}
	if s.UsedHeightM+u.HeightM > cargoHeightM+fitTolerance {
		return model.Footprint{}, false
	}

	for _, fp := range orientations(u.Footprint) {
		if fp.WidthM <= s.Footprint.WidthM+fitTolerance && fp.DepthM <= s.Footprint.DepthM+fitTolerance {
			return fp, true
		}
	}
	return model.Footprint{}, false
}

// orientations lists the footprint as given and, when different, rotated by 90 degrees.
func orientations(fp model.Footprint) []model.Footprint {
	if fp.WidthM == fp.DepthM {
		return []model.Footprint{fp}
	}
	return []model.Footprint{fp, fp.Rotated()}
}

// VehicleBuilder accumulates units for one vehicle during packing. It carries the
// shelf cursor used to open new floor slots row by row, front to back.
type VehicleBuilder struct {
	Class         model.VehicleClass
	Units         []model.PhysicalUnit
	TotalMassKg   float64
	TotalVolumeM3 float64
	Slots         []*FloorSlot

	// OverCapacity marks a vehicle opened for a unit that fits no class on its own.
	// Such a vehicle accepts nothing else.
	OverCapacity bool

	cursorX  float64
	cursorY  float64
	rowDepth float64
}

func newVehicleBuilder(class model.VehicleClass) *VehicleBuilder {
	return &VehicleBuilder{Class: class}
}

func (b *VehicleBuilder) hasCapacityFor(u model.PhysicalUnit) bool {
	if b.OverCapacity {
		return false
	}
	if b.TotalMassKg+u.MassKg > b.Class.MaxWeightKg+capacityEpsilon {
		return false
	}
	return b.TotalVolumeM3+u.VolumeM3 <= b.Class.MaxVolumeM3+capacityEpsilon
}

// TryAdd places u in the vehicle if its limits and floor allow, stacking first.
func (b *VehicleBuilder) TryAdd(u model.PhysicalUnit) bool {
	if !b.hasCapacityFor(u) {
		return false
	}
	if !b.tryStack(u) && !b.tryFloor(u) {
		return false
	}
	b.record(u)
	return true
}

func (b *VehicleBuilder) record(u model.PhysicalUnit) {
	b.Units = append(b.Units, u)
	b.TotalMassKg += u.MassKg
	b.TotalVolumeM3 += u.VolumeM3
}

func (b *VehicleBuilder) tryStack(u model.PhysicalUnit) bool {
	for _, slot := range b.Slots {
		if fp, ok := slot.canHold(u, b.Class.CargoHeightM); ok {
			slot.push(u, fp)
			return true
		}
	}
	return false
}

// tryFloor opens a new slot at the shelf cursor, wrapping to a new row when the
// current one is full. The wrap is kept only if the unit fits on the new row.
func (b *VehicleBuilder) tryFloor(u model.PhysicalUnit) bool {
	if u.HeightM > b.Class.CargoHeightM+fitTolerance {
		return false
	}

	width, length := b.Class.CargoWidthM, b.Class.CargoLengthM
	for _, fp := range orientations(u.Footprint) {
		if b.cursorX+fp.WidthM <= width+fitTolerance && b.cursorY+fp.DepthM <= length+fitTolerance {
			b.openSlot(b.cursorX, b.cursorY, fp, u)
			return true
		}
	}

	nextY := b.cursorY + b.rowDepth
	for _, fp := range orientations(u.Footprint) {
		if fp.WidthM <= width+fitTolerance && nextY+fp.DepthM <= length+fitTolerance {
			b.cursorX, b.cursorY, b.rowDepth = 0, nextY, 0
			b.openSlot(0, nextY, fp, u)
			return true
		}
	}
	return false
}

func (b *VehicleBuilder) openSlot(x, y float64, fp model.Footprint, u model.PhysicalUnit) {
	slot := &FloorSlot{X: x, Y: y, Footprint: fp}
	slot.push(u, fp)
	b.Slots = append(b.Slots, slot)

	b.cursorX = x + fp.WidthM
	b.rowDepth = math.Max(b.rowDepth, fp.DepthM)
}

// force places u alone at the front of the floor, clamping its slot to the cargo bay.
func (b *VehicleBuilder) force(u model.PhysicalUnit) {
	fp := u.Footprint
	if fp.WidthM > b.Class.CargoWidthM && fp.DepthM < fp.WidthM {
		fp = fp.Rotated()
	}
	slotFp := model.Footprint{
		WidthM: math.Min(fp.WidthM, b.Class.CargoWidthM),
		DepthM: math.Min(fp.DepthM, b.Class.CargoLengthM),
	}

	slot := &FloorSlot{Footprint: slotFp}
	slot.push(u, fp)
	b.Slots = append(b.Slots, slot)
	b.cursorX, b.cursorY, b.rowDepth = slotFp.WidthM, 0, slotFp.DepthM

	b.record(u)
	b.OverCapacity = true
}

// fitsAlone reports whether class c can carry u as its only unit.
func fitsAlone(c model.VehicleClass, u model.PhysicalUnit) bool {
	if u.VolumeM3 > c.MaxVolumeM3+capacityEpsilon || u.MassKg > c.MaxWeightKg+capacityEpsilon {
		return false
	}
	if u.HeightM > c.CargoHeightM+fitTolerance {
		return false
	}
	for _, fp := range orientations(u.Footprint) {
		if fp.WidthM <= c.CargoWidthM+fitTolerance && fp.DepthM <= c.CargoLengthM+fitTolerance {
			return true
		}
	}
	return false
}

// sortedCatalog returns a copy of the catalog in ascending capacity order.
func sortedCatalog(catalog []model.VehicleClass) []model.VehicleClass {
	out := make([]model.VehicleClass, len(catalog))
	copy(out, catalog)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MaxVolumeM3 != out[j].MaxVolumeM3 {
			return out[i].MaxVolumeM3 < out[j].MaxVolumeM3
		}
		return out[i].MaxWeightKg < out[j].MaxWeightKg
	})
	return out
}

// packingOrder returns a copy of units with no-stack units first, then by
// descending volume and descending mass. Ties keep input order.
func packingOrder(units []model.PhysicalUnit) []model.PhysicalUnit {
	out := make([]model.PhysicalUnit, len(units))
	copy(out, units)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aNo, bNo := a.Stackability == model.StackNone, b.Stackability == model.StackNone
		if aNo != bNo {
			return aNo
		}
		if a.VolumeM3 != b.VolumeM3 {
			return a.VolumeM3 > b.VolumeM3
		}
		return a.MassKg > b.MassKg
	})
	return out
}

// Pack assigns every unit to a vehicle using first-fit decreasing with vertical
// consolidation. Vehicles are returned in the order they were opened.
// An empty catalog falls back to model.DefaultVehicleCatalog.
func Pack(units []model.PhysicalUnit, catalog []model.VehicleClass) []*VehicleBuilder {
	if len(catalog) == 0 {
		catalog = model.DefaultVehicleCatalog()
	}
	classes := sortedCatalog(catalog)

	var vehicles []*VehicleBuilder
	for _, u := range packingOrder(units) {
		if placeInOpenVehicle(vehicles, u) {
			continue
		}
		vehicles = append(vehicles, openVehicle(classes, u))
	}
	return vehicles
}

func placeInOpenVehicle(vehicles []*VehicleBuilder, u model.PhysicalUnit) bool {
	for _, v := range vehicles {
		if v.TryAdd(u) {
			return true
		}
	}
	return false
}

// openVehicle starts a vehicle of the smallest class that carries u alone, or
// the largest class flagged over capacity when none does.
func openVehicle(classes []model.VehicleClass, u model.PhysicalUnit) *VehicleBuilder {
	for _, c := range classes {
		if !fitsAlone(c, u) {
			continue
		}
		v := newVehicleBuilder(c)
		if v.TryAdd(u) {
			return v
		}
	}

	v := newVehicleBuilder(classes[len(classes)-1])
	v.force(u)
	return v
}
