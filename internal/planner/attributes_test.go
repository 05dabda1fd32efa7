package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/load-planner/internal/domain/model"
)

func TestLookupTable_LongestPatternFirst(t *testing.T) {
	table := newLookupTable(
		kv("table", "generic"),
		kv("dining table", "specific"),
		kv("tab", "short"),
	)

	assert.Equal(t, "dining table", table[0].pattern)
	assert.Equal(t, "tab", table[2].pattern)

	v, ok := table.match("Oak DINING TABLE")
	assert.True(t, ok)
	assert.Equal(t, "specific", v)

	v, ok = table.match("side table")
	assert.True(t, ok)
	assert.Equal(t, "generic", v)

	_, ok = table.match("sofa")
	assert.False(t, ok)
}

func TestDensityFor(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		expected float64
	}{
		{"sofa", "Sofa", 250},
		{"case insensitive", "LEATHER COUCH", 250},
		{"dresser", "Dresser", 400},
		{"tv", "TV", 80},
		{"desk lamp prefers lamp density", "Desk Lamp", 30},
		{"unknown falls back to default", "Mystery Thing", DefaultDensityKgPerM3},
		{"empty name falls back to default", "", DefaultDensityKgPerM3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DensityFor(tt.item))
		})
	}
}

func TestMassFor(t *testing.T) {
	assert.InDelta(t, 100.0, MassFor("Box", 1.0), 1e-9)
	assert.InDelta(t, 150.0, MassFor("Unknown", 1.0), 1e-9)
	assert.Equal(t, MinMassKg, MassFor("Lamp", 0))
	assert.Equal(t, MinMassKg, MassFor("Lamp", -3))
}

func TestFootprintFor(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		volume   float64
		expected model.Footprint
	}{
		{"dining table before table", "Dining Table", 0.5, model.Footprint{WidthM: 1.8, DepthM: 0.9}},
		{"coffee table before table", "Coffee Table", 0.3, model.Footprint{WidthM: 1.1, DepthM: 0.6}},
		{"plain table", "Table", 0.5, model.Footprint{WidthM: 1.2, DepthM: 0.8}},
		{"fridge", "Fridge", 0.8, model.Footprint{WidthM: 0.8, DepthM: 0.75}},
		{"fallback square", "Widget", 0.75, model.Footprint{WidthM: 1.0, DepthM: 1.0}},
		{"fallback width clamped", "Widget", 3.0, model.Footprint{WidthM: 1.0, DepthM: 4.0}},
		{"zero volume", "Widget", 0, model.Footprint{WidthM: 0.1, DepthM: 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FootprintFor(tt.item, tt.volume)
			assert.InDelta(t, tt.expected.WidthM, got.WidthM, 1e-9)
			assert.InDelta(t, tt.expected.DepthM, got.DepthM, 1e-9)
		})
	}
}

func TestHeightFor(t *testing.T) {
	square := model.Footprint{WidthM: 1, DepthM: 1}

	assert.Equal(t, 1.7, HeightFor("Fridge", 0.8, square))
	assert.Equal(t, 1.6, HeightFor("Floor Lamp", 0.1, square))
	assert.InDelta(t, 0.75, HeightFor("Widget", 0.75, square), 1e-9)
	assert.Equal(t, 0.3, HeightFor("Widget", 0.01, square))
	assert.Equal(t, 1.5, HeightFor("Widget", 5, square))
	assert.Equal(t, 0.3, HeightFor("Widget", 0, square))
}

func TestStackabilityFor(t *testing.T) {
	tests := []struct {
		item     string
		expected model.Stackability
	}{
		{"Fridge", model.StackNone},
		{"Upright Piano", model.StackNone},
		{"Moving Box", model.StackBase},
		{"TV Stand", model.StackBase},
		{"Floor Lamp", model.StackTopOnly},
		{"Desk Lamp", model.StackTopOnly},
		{"Queen Mattress", model.StackTopOnly},
		{"Chair", model.StackStackable},
		{"Something Else", model.StackStackable},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			assert.Equal(t, tt.expected, StackabilityFor(tt.item))
		})
	}
}

func TestCareFor(t *testing.T) {
	tests := []struct {
		item     string
		expected model.Care
	}{
		{"Glass Vase", model.CareFragile},
		{"Lamp", model.CareFragile},
		{"Flat Screen TV", model.CareFragile},
		{"TV Stand", model.CareStandard},
		{"Bed Frame", model.CareStandard},
		{"Picture Frame", model.CareFragile},
		{"Laptop", model.CareCareful},
		{"Acoustic Guitar", model.CareCareful},
		{"Washing Machine", model.CareHeavyDuty},
		{"Fridge", model.CareHeavyDuty},
		{"Chair", model.CareStandard},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			assert.Equal(t, tt.expected, CareFor(tt.item))
		})
	}
}

func TestInferUnit(t *testing.T) {
	u := InferUnit("Fridge", 28*model.CubicFeetToCubicMeters)

	assert.Equal(t, "Fridge", u.Name)
	assert.InDelta(t, 198.2176, u.MassKg, 1e-6)
	assert.InDelta(t, 0.7928704, u.VolumeM3, 1e-9)
	assert.Equal(t, model.Footprint{WidthM: 0.8, DepthM: 0.75}, u.Footprint)
	assert.Equal(t, 1.7, u.HeightM)
	assert.Equal(t, model.StackNone, u.Stackability)
	assert.Equal(t, model.CareHeavyDuty, u.Care)
}

func TestInferUnit_DegenerateInput(t *testing.T) {
	u := InferUnit("", -1)

	assert.Equal(t, 0.0, u.VolumeM3)
	assert.Equal(t, MinMassKg, u.MassKg)
	assert.Greater(t, u.Footprint.WidthM, 0.0)
	assert.Greater(t, u.Footprint.DepthM, 0.0)
	assert.Greater(t, u.HeightM, 0.0)
	assert.Equal(t, model.StackStackable, u.Stackability)
	assert.Equal(t, model.CareStandard, u.Care)
}
