package model

// VehicleClass describes one tier of the fleet.
//
// @Description Vehicle class with load limits and cargo bay dimensions
type VehicleClass struct {
	ID           string  `json:"id" bson:"id" example:"small-van"`
	Name         string  `json:"name" bson:"name" example:"Small Van"`
	MaxVolumeM3  float64 `json:"max_volume_m3" bson:"max_volume_m3" example:"6"`
	MaxWeightKg  float64 `json:"max_weight_kg" bson:"max_weight_kg" example:"1000"`
	CargoWidthM  float64 `json:"cargo_width_m" bson:"cargo_width_m" example:"1.7"`
	CargoLengthM float64 `json:"cargo_length_m" bson:"cargo_length_m" example:"2.5"`
	CargoHeightM float64 `json:"cargo_height_m" bson:"cargo_height_m" example:"1.4"`
} // @name VehicleClass

// DefaultVehicleCatalog returns the standard four-tier fleet, ascending by capacity.
// A fresh slice is returned on every call.
func DefaultVehicleCatalog() []VehicleClass {
	return []VehicleClass{
		{ID: "small-van", Name: "Small Van", MaxVolumeM3: 6, MaxWeightKg: 1000, CargoWidthM: 1.70, CargoLengthM: 2.50, CargoHeightM: 1.40},
		{ID: "medium-van", Name: "Medium Van", MaxVolumeM3: 12, MaxWeightKg: 2000, CargoWidthM: 1.75, CargoLengthM: 3.40, CargoHeightM: 1.90},
		{ID: "box-truck", Name: "Box Truck", MaxVolumeM3: 28, MaxWeightKg: 5000, CargoWidthM: 2.30, CargoLengthM: 5.50, CargoHeightM: 2.20},
		{ID: "large-truck", Name: "Large Truck", MaxVolumeM3: 60, MaxWeightKg: 12000, CargoWidthM: 2.45, CargoLengthM: 10.00, CargoHeightM: 2.50},
	}
}
