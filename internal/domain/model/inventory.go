// Package model defines the core domain entities for the load planner.
package model

// CubicFeetToCubicMeters converts a volume in ft³ to m³.
const CubicFeetToCubicMeters = 0.0283168

// InventoryItem is one line of a scanned inventory.
//
// @Description Inventory line produced by the room survey
// @Example {"name": "Sofa", "quantity": 1, "volume_per_unit_cubic_feet": 35}
type InventoryItem struct {
	// Name is the free-text item name
	Name string `json:"name" bson:"name" example:"Sofa"`
	// Quantity is the number of identical units; values below 1 count as 1
	Quantity int `json:"quantity" bson:"quantity" example:"1"`
	// VolumePerUnitCubicFeet is the declared volume of a single unit in ft³
	VolumePerUnitCubicFeet float64 `json:"volume_per_unit_cubic_feet" bson:"volume_per_unit_cubic_feet" example:"35"`
}

// Units returns the effective quantity of the item.
func (i InventoryItem) Units() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// VolumePerUnitM3 returns the declared unit volume in m³, never negative.
func (i InventoryItem) VolumePerUnitM3() float64 {
	if i.VolumePerUnitCubicFeet <= 0 {
		return 0
	}
	return i.VolumePerUnitCubicFeet * CubicFeetToCubicMeters
}

// Room is a named inventory source, typically one surveyed room.
type Room struct {
	Name  string          `json:"name" example:"Living Room"`
	Items []InventoryItem `json:"items"`
}
