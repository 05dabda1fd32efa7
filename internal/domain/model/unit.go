package model

// Stackability describes how a unit may take part in a vertical stack.
type Stackability string

const (
	// StackBase units are flat and strong; other units may stand on them.
	StackBase Stackability = "base"
	// StackStackable units may sit on a base or on another stackable unit.
	StackStackable Stackability = "stackable"
	// StackTopOnly units must be the topmost unit of a stack.
	StackTopOnly Stackability = "top-only"
	// StackNone units occupy their own floor slot with nothing above or below.
	StackNone Stackability = "no-stack"
)

// Care is the handling-sensitivity class of a unit.
type Care string

const (
	CareFragile   Care = "fragile"
	CareCareful   Care = "careful"
	CareStandard  Care = "standard"
	CareHeavyDuty Care = "heavy-duty"
)

// Priority returns the loading rank of the care class. Lower ranks are loaded first.
func (c Care) Priority() int {
	switch c {
	case CareHeavyDuty:
		return 0
	case CareCareful:
		return 2
	case CareFragile:
		return 3
	default:
		return 1
	}
}

// Footprint is the floor area of a unit in metres.
type Footprint struct {
	WidthM float64 `json:"width_m"`
	DepthM float64 `json:"depth_m"`
}

// Rotated returns the footprint turned by 90 degrees.
func (f Footprint) Rotated() Footprint {
	return Footprint{WidthM: f.DepthM, DepthM: f.WidthM}
}

// PhysicalUnit is one physical instance of an inventory item with its inferred attributes.
type PhysicalUnit struct {
	Name         string       `json:"name"`
	MassKg       float64      `json:"mass_kg"`
	VolumeM3     float64      `json:"volume_m3"`
	Footprint    Footprint    `json:"footprint"`
	HeightM      float64      `json:"height_m"`
	Stackability Stackability `json:"stackability"`
	Care         Care         `json:"care"`
}
