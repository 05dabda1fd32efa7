package model

// PlacedItem is a unit with its position inside a vehicle.
// X and Y locate the floor slot, Z is the height of the stack beneath the unit
// and Layer is its 0-based position in that stack.
type PlacedItem struct {
	// Sequence is the 1-based loading step; step 1 goes into the vehicle first
	Sequence     int          `json:"sequence" example:"1"`
	Name         string       `json:"name" example:"Fridge"`
	MassKg       float64      `json:"mass_kg" example:"198.2"`
	VolumeM3     float64      `json:"volume_m3" example:"0.793"`
	WidthM       float64      `json:"width_m" example:"0.8"`
	DepthM       float64      `json:"depth_m" example:"0.75"`
	HeightM      float64      `json:"height_m" example:"1.7"`
	Stackability Stackability `json:"stackability" example:"no-stack"`
	Care         Care         `json:"care" example:"heavy-duty"`
	Slot         int          `json:"slot" example:"0"`
	X            float64      `json:"x" example:"0"`
	Y            float64      `json:"y" example:"0"`
	Z            float64      `json:"z" example:"0"`
	Layer        int          `json:"layer" example:"0"`
}

// VehiclePlan is one vehicle of a load plan with its loading sequence.
//
// @Description Vehicle with its ordered load sequence
type VehiclePlan struct {
	VehicleClass  VehicleClass `json:"vehicle_class"`
	LoadOrder     []PlacedItem `json:"load_order"`
	UnitCount     int          `json:"unit_count" example:"4"`
	TotalVolumeM3 float64      `json:"total_volume_m3" example:"2.1"`
	TotalMassKg   float64      `json:"total_mass_kg" example:"450.3"`
	CargoWidthM   float64      `json:"cargo_width_m" example:"1.75"`
	CargoLengthM  float64      `json:"cargo_length_m" example:"3.4"`
	CargoHeightM  float64      `json:"cargo_height_m" example:"1.9"`
	// OverCapacity is set when a unit could not fit any class and was forced into the largest one
	OverCapacity bool `json:"over_capacity" example:"false"`
} // @name VehiclePlan

// VehicleSummary is a compact per-vehicle row for dashboards.
type VehicleSummary struct {
	Type          string  `json:"type" example:"Medium Van"`
	Count         int     `json:"count" example:"4"`
	TotalVolumeM3 float64 `json:"total_volume_m3" example:"1.906"`
	TotalMassKg   float64 `json:"total_mass_kg" example:"450.3"`
}

// PlanSummary aggregates a plan and its source inventory.
type PlanSummary struct {
	Vehicles      []VehicleSummary `json:"vehicles"`
	VehicleCount  int              `json:"vehicle_count" example:"1"`
	TotalItems    int              `json:"total_items" example:"4"`
	TotalVolumeM3 float64          `json:"total_volume_m3" example:"1.906"`
	TotalMassKg   float64          `json:"total_mass_kg" example:"450.3"`

	// MeanVolumeUtilization is the average of used/max volume across vehicles
	MeanVolumeUtilization float64 `json:"mean_volume_utilization" example:"0.16"`
	// MeanWeightUtilization is the average of used/max weight across vehicles
	MeanWeightUtilization float64 `json:"mean_weight_utilization" example:"0.22"`
}

// PlanResult is the complete answer to a planning request.
//
// @Description Load plan with vehicles and summary
type PlanResult struct {
	Vehicles []VehiclePlan `json:"vehicles"`
	Summary  PlanSummary   `json:"summary"`
} // @name PlanResult

// Empty returns a PlanResult with no vehicles.
func Empty() PlanResult {
	return PlanResult{
		Vehicles: []VehiclePlan{},
		Summary:  PlanSummary{Vehicles: []VehicleSummary{}},
	}
}

// RoomSummary describes one source room of a multi-room plan.
type RoomSummary struct {
	Name string `json:"name" example:"Room 1"`
	// InferredName is the guessed room type, empty when no keyword matched
	InferredName string `json:"inferred_name,omitempty" example:"Living Room"`
	ItemCount    int    `json:"item_count" example:"3"`
}

// RoomsPlanResult is the plan of several rooms merged into one inventory.
//
// @Description Multi-room plan with the merged inventory
type RoomsPlanResult struct {
	Rooms []RoomSummary   `json:"rooms"`
	Items []InventoryItem `json:"items"`
	Plan  PlanResult      `json:"plan"`
} // @name RoomsPlanResult
