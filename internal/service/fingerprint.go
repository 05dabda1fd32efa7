package service

import (
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/guttosm/load-planner/internal/domain/model"
)

// Fingerprint identifies a planning request. Two requests with the same items, in
// the same order, and the same catalog share a fingerprint.
func Fingerprint(items []model.InventoryItem, catalog []model.VehicleClass) string {
	d := xxhash.New()
	var buf [8]byte

	writeFloat := func(f float64) {
		bits := math.Float64bits(f)
		for i := range buf {
			buf[i] = byte(bits >> (8 * i))
		}
		_, _ = d.Write(buf[:])
	}
	writeString := func(s string) {
		writeFloat(float64(len(s)))
		_, _ = d.WriteString(s)
	}

	writeFloat(float64(len(items)))
	for _, it := range items {
		writeString(it.Name)
		writeFloat(float64(it.Units()))
		writeFloat(it.VolumePerUnitCubicFeet)
	}

	writeFloat(float64(len(catalog)))
	for _, c := range catalog {
		writeString(c.ID)
		writeString(c.Name)
		writeFloat(c.MaxVolumeM3)
		writeFloat(c.MaxWeightKg)
		writeFloat(c.CargoWidthM)
		writeFloat(c.CargoLengthM)
		writeFloat(c.CargoHeightM)
	}

	return strconv.FormatUint(d.Sum64(), 16)
}
