// Package planner implements the vehicle load-planning engine: attribute inference,
// unit expansion, bin packing, load ordering and inventory aggregation.
//
// Everything in this package is pure and deterministic. Functions allocate their own
// working state and never touch package-level mutable data, so they are safe to call
// concurrently.
package planner

import (
	"math"
	"sort"
	"strings"

	"github.com/guttosm/load-planner/internal/domain/model"
)

const (
	// DefaultDensityKgPerM3 applies when an item name matches no density entry.
	DefaultDensityKgPerM3 = 150.0
	// MinMassKg keeps every unit strictly heavier than zero.
	MinMassKg = 0.1

	referenceHeightM = 0.75
	maxFallbackWidth = 1.0
	minSideM         = 0.1
	minFallbackH     = 0.3
	maxFallbackH     = 1.5
)

// lookupEntry pairs a lowercase name fragment with a value.
type lookupEntry[T any] struct {
	pattern string
	value   T
}

func kv[T any](pattern string, value T) lookupEntry[T] {
	return lookupEntry[T]{pattern: pattern, value: value}
}

// lookupTable is checked in order; longer patterns come first so that
// "dining table" wins over "table".
type lookupTable[T any] []lookupEntry[T]

func newLookupTable[T any](entries ...lookupEntry[T]) lookupTable[T] {
	t := make(lookupTable[T], len(entries))
	copy(t, entries)
	sort.SliceStable(t, func(i, j int) bool {
		return len(t[i].pattern) > len(t[j].pattern)
	})
	return t
}

func (t lookupTable[T]) match(name string) (T, bool) {
	n := strings.ToLower(name)
	for _, e := range t {
		if strings.Contains(n, e.pattern) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

var densityTable = newLookupTable(
	kv("sofa", 250.0),
	kv("couch", 250.0),
	kv("sectional", 250.0),
	kv("armchair", 200.0),
	kv("recliner", 220.0),
	kv("mattress", 150.0),
	kv("bed", 200.0),
	kv("chair", 200.0),
	kv("ottoman", 200.0),
	kv("table", 350.0),
	kv("desk", 350.0),
	kv("dresser", 400.0),
	kv("chest of drawers", 400.0),
	kv("wardrobe", 300.0),
	kv("cabinet", 350.0),
	kv("nightstand", 350.0),
	kv("bookshelf", 400.0),
	kv("bookcase", 400.0),
	kv("refrigerator", 250.0),
	kv("fridge", 250.0),
	kv("freezer", 250.0),
	kv("washing machine", 350.0),
	kv("washer", 350.0),
	kv("dryer", 250.0),
	kv("dishwasher", 300.0),
	kv("oven", 300.0),
	kv("stove", 300.0),
	kv("microwave", 200.0),
	kv("piano", 450.0),
	kv("tv", 80.0),
	kv("television", 80.0),
	kv("monitor", 80.0),
	kv("lamp", 30.0),
	kv("desk lamp", 30.0),
	kv("mirror", 120.0),
	kv("rug", 50.0),
	kv("box", 100.0),
	kv("toolbox", 300.0),
	kv("plant", 120.0),
	kv("bike", 60.0),
)

var footprintTable = newLookupTable(
	kv("sectional", model.Footprint{WidthM: 2.6, DepthM: 1.6}),
	kv("sofa", model.Footprint{WidthM: 2.0, DepthM: 0.9}),
	kv("couch", model.Footprint{WidthM: 2.0, DepthM: 0.9}),
	kv("armchair", model.Footprint{WidthM: 0.9, DepthM: 0.9}),
	kv("recliner", model.Footprint{WidthM: 0.9, DepthM: 1.0}),
	kv("mattress", model.Footprint{WidthM: 1.9, DepthM: 1.4}),
	kv("bed", model.Footprint{WidthM: 2.0, DepthM: 1.5}),
	kv("chair", model.Footprint{WidthM: 0.5, DepthM: 0.5}),
	kv("ottoman", model.Footprint{WidthM: 0.6, DepthM: 0.6}),
	kv("dining table", model.Footprint{WidthM: 1.8, DepthM: 0.9}),
	kv("coffee table", model.Footprint{WidthM: 1.1, DepthM: 0.6}),
	kv("side table", model.Footprint{WidthM: 0.5, DepthM: 0.5}),
	kv("table", model.Footprint{WidthM: 1.2, DepthM: 0.8}),
	kv("desk", model.Footprint{WidthM: 1.2, DepthM: 0.6}),
	kv("dresser", model.Footprint{WidthM: 1.2, DepthM: 0.5}),
	kv("chest of drawers", model.Footprint{WidthM: 0.9, DepthM: 0.5}),
	kv("wardrobe", model.Footprint{WidthM: 1.0, DepthM: 0.6}),
	kv("cabinet", model.Footprint{WidthM: 0.9, DepthM: 0.5}),
	kv("nightstand", model.Footprint{WidthM: 0.5, DepthM: 0.4}),
	kv("bookshelf", model.Footprint{WidthM: 0.9, DepthM: 0.35}),
	kv("bookcase", model.Footprint{WidthM: 0.9, DepthM: 0.35}),
	kv("refrigerator", model.Footprint{WidthM: 0.8, DepthM: 0.75}),
	kv("fridge", model.Footprint{WidthM: 0.8, DepthM: 0.75}),
	kv("freezer", model.Footprint{WidthM: 0.9, DepthM: 0.7}),
	kv("washing machine", model.Footprint{WidthM: 0.6, DepthM: 0.6}),
	kv("washer", model.Footprint{WidthM: 0.6, DepthM: 0.6}),
	kv("dryer", model.Footprint{WidthM: 0.6, DepthM: 0.6}),
	kv("dishwasher", model.Footprint{WidthM: 0.6, DepthM: 0.6}),
	kv("oven", model.Footprint{WidthM: 0.6, DepthM: 0.6}),
	kv("stove", model.Footprint{WidthM: 0.75, DepthM: 0.65}),
	kv("microwave", model.Footprint{WidthM: 0.5, DepthM: 0.4}),
	kv("piano", model.Footprint{WidthM: 1.5, DepthM: 0.6}),
	kv("tv stand", model.Footprint{WidthM: 1.4, DepthM: 0.45}),
	kv("tv", model.Footprint{WidthM: 1.2, DepthM: 0.2}),
	kv("television", model.Footprint{WidthM: 1.2, DepthM: 0.2}),
	kv("monitor", model.Footprint{WidthM: 0.6, DepthM: 0.2}),
	kv("floor lamp", model.Footprint{WidthM: 0.4, DepthM: 0.4}),
	kv("desk lamp", model.Footprint{WidthM: 0.3, DepthM: 0.3}),
	kv("lamp", model.Footprint{WidthM: 0.4, DepthM: 0.4}),
	kv("mirror", model.Footprint{WidthM: 0.9, DepthM: 0.1}),
	kv("rug", model.Footprint{WidthM: 2.0, DepthM: 0.4}),
	kv("box", model.Footprint{WidthM: 0.45, DepthM: 0.35}),
	kv("toolbox", model.Footprint{WidthM: 0.6, DepthM: 0.3}),
	kv("plant", model.Footprint{WidthM: 0.4, DepthM: 0.4}),
	kv("bike", model.Footprint{WidthM: 1.7, DepthM: 0.6}),
)

var heightTable = newLookupTable(
	kv("sectional", 0.85),
	kv("sofa", 0.85),
	kv("couch", 0.85),
	kv("armchair", 0.95),
	kv("recliner", 1.0),
	kv("mattress", 0.3),
	kv("bed", 0.45),
	kv("chair", 0.9),
	kv("ottoman", 0.45),
	kv("dining table", 0.75),
	kv("coffee table", 0.45),
	kv("side table", 0.55),
	kv("table", 0.75),
	kv("desk", 0.75),
	kv("dresser", 0.9),
	kv("chest of drawers", 1.0),
	kv("wardrobe", 1.8),
	kv("cabinet", 0.9),
	kv("nightstand", 0.6),
	kv("bookshelf", 1.8),
	kv("bookcase", 1.8),
	kv("refrigerator", 1.7),
	kv("fridge", 1.7),
	kv("freezer", 0.9),
	kv("washing machine", 0.85),
	kv("washer", 0.85),
	kv("dryer", 0.85),
	kv("dishwasher", 0.85),
	kv("oven", 0.9),
	kv("stove", 0.9),
	kv("microwave", 0.3),
	kv("piano", 1.3),
	kv("tv stand", 0.55),
	kv("tv", 0.7),
	kv("television", 0.7),
	kv("monitor", 0.5),
	kv("floor lamp", 1.6),
	kv("desk lamp", 0.5),
	kv("lamp", 0.6),
	kv("mirror", 1.2),
	kv("rug", 0.4),
	kv("box", 0.4),
	kv("toolbox", 0.3),
	kv("plant", 0.8),
	kv("bike", 1.0),
)

var stackabilityTable = newLookupTable(
	kv("box", model.StackBase),
	kv("crate", model.StackBase),
	kv("trunk", model.StackBase),
	kv("toolbox", model.StackBase),
	kv("dresser", model.StackBase),
	kv("chest of drawers", model.StackBase),
	kv("cabinet", model.StackBase),
	kv("nightstand", model.StackBase),
	kv("desk", model.StackBase),
	kv("tv stand", model.StackBase),
	kv("washing machine", model.StackBase),
	kv("washer", model.StackBase),
	kv("dryer", model.StackBase),
	kv("dishwasher", model.StackBase),
	kv("freezer", model.StackBase),
	kv("mattress", model.StackTopOnly),
	kv("lamp", model.StackTopOnly),
	kv("desk lamp", model.StackTopOnly),
	kv("plant", model.StackTopOnly),
	kv("mirror", model.StackTopOnly),
	kv("tv", model.StackTopOnly),
	kv("television", model.StackTopOnly),
	kv("monitor", model.StackTopOnly),
	kv("refrigerator", model.StackNone),
	kv("fridge", model.StackNone),
	kv("piano", model.StackNone),
	kv("wardrobe", model.StackNone),
	kv("bookshelf", model.StackNone),
	kv("bookcase", model.StackNone),
	kv("oven", model.StackNone),
	kv("stove", model.StackNone),
	kv("bike", model.StackNone),
)

var careTable = newLookupTable(
	kv("glass", model.CareFragile),
	kv("mirror", model.CareFragile),
	kv("tv", model.CareFragile),
	kv("television", model.CareFragile),
	kv("monitor", model.CareFragile),
	kv("screen", model.CareFragile),
	kv("lamp", model.CareFragile),
	kv("vase", model.CareFragile),
	kv("ceramic", model.CareFragile),
	kv("china", model.CareFragile),
	kv("porcelain", model.CareFragile),
	kv("artwork", model.CareFragile),
	kv("painting", model.CareFragile),
	kv("picture", model.CareFragile),
	kv("frame", model.CareFragile),
	kv("tv stand", model.CareStandard),
	kv("bed frame", model.CareStandard),
	kv("computer", model.CareCareful),
	kv("laptop", model.CareCareful),
	kv("printer", model.CareCareful),
	kv("speaker", model.CareCareful),
	kv("stereo", model.CareCareful),
	kv("console", model.CareCareful),
	kv("piano", model.CareCareful),
	kv("guitar", model.CareCareful),
	kv("keyboard", model.CareCareful),
	kv("drum", model.CareCareful),
	kv("instrument", model.CareCareful),
	kv("microwave", model.CareCareful),
	kv("plant", model.CareCareful),
	kv("refrigerator", model.CareHeavyDuty),
	kv("fridge", model.CareHeavyDuty),
	kv("freezer", model.CareHeavyDuty),
	kv("washing machine", model.CareHeavyDuty),
	kv("washer", model.CareHeavyDuty),
	kv("dryer", model.CareHeavyDuty),
	kv("dishwasher", model.CareHeavyDuty),
	kv("oven", model.CareHeavyDuty),
	kv("stove", model.CareHeavyDuty),
	kv("safe", model.CareHeavyDuty),
)

// DensityFor returns the estimated density of an item in kg/m³.
func DensityFor(name string) float64 {
	if d, ok := densityTable.match(name); ok {
		return d
	}
	return DefaultDensityKgPerM3
}

// MassFor returns the estimated mass of one unit, never below MinMassKg.
func MassFor(name string, volumeM3 float64) float64 {
	return math.Max(MinMassKg, math.Max(volumeM3, 0)*DensityFor(name))
}

// FootprintFor returns the floor footprint of one unit. Unknown names get a
// square-ish footprint derived from the volume at a reference height.
func FootprintFor(name string, volumeM3 float64) model.Footprint {
	if fp, ok := footprintTable.match(name); ok {
		return fp
	}

	area := volumeM3 / referenceHeightM
	if area <= 0 {
		return model.Footprint{WidthM: minSideM, DepthM: minSideM}
	}

	width := math.Min(math.Sqrt(area), maxFallbackWidth)
	depth := area / width
	return model.Footprint{
		WidthM: math.Max(width, minSideM),
		DepthM: math.Max(depth, minSideM),
	}
}

// HeightFor returns the height of one unit in metres.
func HeightFor(name string, volumeM3 float64, fp model.Footprint) float64 {
	if h, ok := heightTable.match(name); ok {
		return h
	}

	area := fp.WidthM * fp.DepthM
	if volumeM3 <= 0 || area <= 0 {
		return minFallbackH
	}
	return math.Min(math.Max(volumeM3/area, minFallbackH), maxFallbackH)
}

// StackabilityFor classifies how a unit may be stacked. Defaults to stackable.
func StackabilityFor(name string) model.Stackability {
	if s, ok := stackabilityTable.match(name); ok {
		return s
	}
	return model.StackStackable
}

// CareFor classifies the handling care of a unit. Defaults to standard.
func CareFor(name string) model.Care {
	if c, ok := careTable.match(name); ok {
		return c
	}
	return model.CareStandard
}

// InferUnit builds the physical unit for an item name and its unit volume in m³.
func InferUnit(name string, volumeM3 float64) model.PhysicalUnit {
	volumeM3 = math.Max(volumeM3, 0)
	fp := FootprintFor(name, volumeM3)

	return model.PhysicalUnit{
		Name:         name,
		MassKg:       MassFor(name, volumeM3),
		VolumeM3:     volumeM3,
		Footprint:    fp,
		HeightM:      HeightFor(name, volumeM3, fp),
		Stackability: StackabilityFor(name),
		Care:         CareFor(name),
	}
}
