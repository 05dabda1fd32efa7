package planner

import (
	"strings"

	"github.com/guttosm/load-planner/internal/domain/model"
)

type roomCategory struct {
	name     string
	keywords []string
}

var roomCategories = []roomCategory{
	{"Bedroom", []string{"bed", "mattress", "dresser", "nightstand", "wardrobe"}},
	{"Living Room", []string{"sofa", "couch", "tv", "television", "coffee table", "armchair", "sectional"}},
	{"Kitchen", []string{"fridge", "refrigerator", "oven", "stove", "microwave", "kitchen", "cabinet"}},
	{"Dining Room", []string{"dining table", "dining", "chair", "table"}},
	{"Office", []string{"desk", "bookshelf", "bookcase", "monitor", "chair", "office"}},
	{"Bathroom", []string{"toilet", "sink", "bathtub", "shower", "vanity", "bathroom"}},
	{"Garage", []string{"tool", "bike", "ladder", "toolbox", "garage"}},
	{"Storage", []string{"box", "crate", "storage", "suitcase"}},
}

// InferRoomName guesses which room an inventory was scanned in.
//
// Every keyword contained in an item name scores one point for its room. The
// highest score wins and ties go to the room that scored first. It returns false
// when the inventory is empty or nothing matches.
func InferRoomName(items []model.InventoryItem) (string, bool) {
	scores := make(map[string]int)
	var seen []string

	for _, it := range items {
		name := strings.ToLower(it.Name)
		for _, cat := range roomCategories {
			for _, kw := range cat.keywords {
				if !strings.Contains(name, kw) {
					continue
				}
				if _, ok := scores[cat.name]; !ok {
					seen = append(seen, cat.name)
				}
				scores[cat.name]++
			}
		}
	}

	best, bestScore := "", 0
	for _, room := range seen {
		if scores[room] > bestScore {
			best, bestScore = room, scores[room]
		}
	}
	return best, bestScore > 0
}
