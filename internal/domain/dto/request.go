// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"fmt"
	"math"
	"strings"

	"github.com/guttosm/load-planner/internal/domain/model"
)

// Default request limits, used when the configuration leaves them unset.
const (
	DefaultMaxItems = 500
	DefaultMaxUnits = 2000
)

// Limits bounds the size of a planning request.
type Limits struct {
	// MaxItems is the maximum number of inventory lines.
	MaxItems int
	// MaxUnits is the maximum number of physical units after quantities are expanded.
	MaxUnits int
}

func (l Limits) withDefaults() Limits {
	if l.MaxItems <= 0 {
		l.MaxItems = DefaultMaxItems
	}
	if l.MaxUnits <= 0 {
		l.MaxUnits = DefaultMaxUnits
	}
	return l
}

// ValidationError represents a field validation error. Key is the translation
// key of the message.
type ValidationError struct {
	Field   string
	Message string
	Key     string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Translation keys of validation messages.
const (
	KeyItemsRequired   = "error.validation.items_required"
	KeyTooManyItems    = "error.validation.too_many_items"
	KeyTooManyUnits    = "error.validation.too_many_units"
	KeyItemName        = "error.validation.item_name"
	KeyItemQuantity    = "error.validation.item_quantity"
	KeyItemVolume      = "error.validation.item_volume"
	KeyRoomsRequired   = "error.validation.rooms_required"
	KeySourcesRequired = "error.validation.sources_required"
	KeyCatalogRequired = "error.validation.catalog_required"
	KeyVehicleClass    = "error.validation.vehicle_class"
)

func invalid(field, key, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Key: key}
}

// PlanRequest is the body of the plan and export endpoints.
//
// @Description Inventory to plan, with an optional vehicle catalog override
// @Example {"items": [{"name": "Sofa", "quantity": 1, "volume_per_unit_cubic_feet": 35}]}
type PlanRequest struct {
	Items []model.InventoryItem `json:"items"`
	// VehicleCatalog replaces the active catalog for this request only
	VehicleCatalog []model.VehicleClass `json:"vehicle_catalog,omitempty"`
} // @name PlanRequest

// Validate checks the inventory against limits and the catalog override, if any.
func (r *PlanRequest) Validate(limits Limits) error {
	limits = limits.withDefaults()
	if len(r.Items) == 0 {
		return invalid("items", KeyItemsRequired, "at least one item is required")
	}
	if err := validateItems("items", r.Items, limits); err != nil {
		return err
	}
	if len(r.VehicleCatalog) > 0 {
		return ValidateCatalog("vehicle_catalog", r.VehicleCatalog)
	}
	return nil
}

// RoomsPlanRequest is the body of the multi-room plan endpoint. Limits apply to
// the rooms combined.
//
// @Description Rooms to merge and plan
type RoomsPlanRequest struct {
	Rooms          []model.Room         `json:"rooms"`
	VehicleCatalog []model.VehicleClass `json:"vehicle_catalog,omitempty"`
} // @name RoomsPlanRequest

func (r *RoomsPlanRequest) Validate(limits Limits) error {
	limits = limits.withDefaults()
	if len(r.Rooms) == 0 {
		return invalid("rooms", KeyRoomsRequired, "at least one room is required")
	}

	lists := make([][]model.InventoryItem, len(r.Rooms))
	for i, room := range r.Rooms {
		lists[i] = room.Items
	}
	if err := validateLists("rooms[%d].items", lists, limits); err != nil {
		return err
	}
	if len(r.VehicleCatalog) > 0 {
		return ValidateCatalog("vehicle_catalog", r.VehicleCatalog)
	}
	return nil
}

// AggregateRequest is the body of the aggregate endpoint.
//
// @Description Item lists to merge by name
type AggregateRequest struct {
	Sources [][]model.InventoryItem `json:"sources"`
} // @name AggregateRequest

func (r *AggregateRequest) Validate(limits Limits) error {
	limits = limits.withDefaults()
	if len(r.Sources) == 0 {
		return invalid("sources", KeySourcesRequired, "at least one item list is required")
	}
	return validateLists("sources[%d]", r.Sources, limits)
}

// InferRoomRequest is the body of the room inference endpoint.
//
// @Description Items of one room
type InferRoomRequest struct {
	Items []model.InventoryItem `json:"items"`
} // @name InferRoomRequest

func (r *InferRoomRequest) Validate(limits Limits) error {
	limits = limits.withDefaults()
	if len(r.Items) == 0 {
		return invalid("items", KeyItemsRequired, "at least one item is required")
	}
	return validateItems("items", r.Items, limits)
}

// CatalogUpdateRequest is the body of the vehicle catalog update endpoint.
//
// @Description New vehicle catalog version
type CatalogUpdateRequest struct {
	Classes []model.VehicleClass `json:"classes"`
	Note    string               `json:"note,omitempty" example:"Added a second box truck size"`
} // @name CatalogUpdateRequest

func (r *CatalogUpdateRequest) Validate() error {
	return ValidateCatalog("classes", r.Classes)
}

// validateLists checks every list and applies limits to their combined size.
func validateLists(fieldFormat string, lists [][]model.InventoryItem, limits Limits) error {
	var (
		items, units int
		err          error
	)
	for i, list := range lists {
		field := fmt.Sprintf(fieldFormat, i)
		for j, item := range list {
			if err := validateItem(fmt.Sprintf("%s[%d]", field, j), item); err != nil {
				return err
			}
			if units, err = addUnits(fmt.Sprintf(fieldFormat, 0), units, item, limits); err != nil {
				return err
			}
		}
		items += len(list)
	}
	if items == 0 {
		return invalid(fmt.Sprintf(fieldFormat, 0), KeyItemsRequired, "at least one item is required")
	}
	return checkLimits(fmt.Sprintf(fieldFormat, 0), items, units, limits)
}

func validateItems(field string, items []model.InventoryItem, limits Limits) error {
	var (
		units int
		err   error
	)
	for i, item := range items {
		if err := validateItem(fmt.Sprintf("%s[%d]", field, i), item); err != nil {
			return err
		}
		if units, err = addUnits(field, units, item, limits); err != nil {
			return err
		}
	}
	return checkLimits(field, len(items), units, limits)
}

// addUnits adds the units of item to total, failing before the sum can pass MaxUnits.
func addUnits(field string, total int, item model.InventoryItem, limits Limits) (int, error) {
	if item.Units() > limits.MaxUnits-total {
		return total, invalid(field, KeyTooManyUnits, "at most %d units are allowed", limits.MaxUnits)
	}
	return total + item.Units(), nil
}

func checkLimits(field string, items, units int, limits Limits) error {
	if items > limits.MaxItems {
		return invalid(field, KeyTooManyItems, "at most %d items are allowed", limits.MaxItems)
	}
	if units > limits.MaxUnits {
		return invalid(field, KeyTooManyUnits, "at most %d units are allowed", limits.MaxUnits)
	}
	return nil
}

func validateItem(field string, item model.InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return invalid(field+".name", KeyItemName, "must not be blank")
	}
	if item.Quantity < 0 {
		return invalid(field+".quantity", KeyItemQuantity, "must not be negative")
	}
	v := item.VolumePerUnitCubicFeet
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field+".volume_per_unit_cubic_feet", KeyItemVolume, "must be a non-negative number")
	}
	return nil
}

// ValidateCatalog checks that a vehicle catalog is usable: at least one class,
// unique non-blank ids, positive capacities and cargo dimensions.
func ValidateCatalog(field string, classes []model.VehicleClass) error {
	if len(classes) == 0 {
		return invalid(field, KeyCatalogRequired, "at least one vehicle class is required")
	}

	seen := make(map[string]struct{}, len(classes))
	for i, c := range classes {
		f := fmt.Sprintf("%s[%d]", field, i)
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return invalid(f+".id", KeyVehicleClass, "must not be blank")
		}
		if _, dup := seen[id]; dup {
			return invalid(f+".id", KeyVehicleClass, "duplicate id %q", id)
		}
		seen[id] = struct{}{}

		for _, dim := range []struct {
			name  string
			value float64
		}{
			{"max_volume_m3", c.MaxVolumeM3},
			{"max_weight_kg", c.MaxWeightKg},
			{"cargo_width_m", c.CargoWidthM},
			{"cargo_length_m", c.CargoLengthM},
			{"cargo_height_m", c.CargoHeightM},
		} {
			if !(dim.value > 0) || math.IsInf(dim.value, 0) {
				return invalid(f+"."+dim.name, KeyVehicleClass, "must be a positive number")
			}
		}
	}
	return nil
}
