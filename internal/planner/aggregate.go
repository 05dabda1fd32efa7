package planner

import (
	"strings"

	"github.com/guttosm/load-planner/internal/domain/model"
)

// normalizeName is the matching key for aggregation.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Aggregate merges item lists from several sources into one.
//
// Items match on case-insensitive, trimmed name. Quantities are summed, with
// missing quantities counting as 1. The first occurrence of a name keeps its
// display name and volume, and merged items appear in order of first appearance.
func Aggregate(sources [][]model.InventoryItem) []model.InventoryItem {
	merged := make([]model.InventoryItem, 0)
	index := make(map[string]int)

	for _, items := range sources {
		for _, it := range items {
			key := normalizeName(it.Name)
			if i, ok := index[key]; ok {
				merged[i].Quantity += it.Units()
				continue
			}
			it.Quantity = it.Units()
			index[key] = len(merged)
			merged = append(merged, it)
		}
	}
	return merged
}

// AggregateRooms merges the items of every room, in room order.
func AggregateRooms(rooms []model.Room) []model.InventoryItem {
	sources := make([][]model.InventoryItem, 0, len(rooms))
	for _, r := range rooms {
		sources = append(sources, r.Items)
	}
	return Aggregate(sources)
}
