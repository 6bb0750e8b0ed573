// Package engine scores candidate grid cells for plant placement based on
// companion-planting adjacency.
package engine

import (
	"sort"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// Suggestion is one scored candidate cell for placing a plant type.
type Suggestion struct {
	X          int
	Y          int
	Score      int
	Companions []string // display names of adjacent companions
	Conflicts  []string // display names of adjacent avoid plants
}

// Suggest evaluates every free in-bounds cell for the given plant type and
// returns up to limit candidates with a positive score, best first. Each
// adjacent companion counts +1 and each adjacent avoid plant counts -2;
// declarations on either side of the pair contribute, since a suggestion
// should steer clear of a neighbor that dislikes the newcomer just as much
// as one the newcomer dislikes. Ties break by row, then column, so the
// result order is stable.
func Suggest(typeID string, plants []model.PlantPlacement, grid model.Grid, catalog *model.Catalog, limit int) []Suggestion {
	def := catalog.FindPlant(typeID)
	if def == nil || limit <= 0 {
		return nil
	}

	occupied := make(map[[2]int]*model.PlantPlacement, len(plants))
	for i := range plants {
		occupied[[2]int{plants[i].X, plants[i].Y}] = &plants[i]
	}

	var candidates []Suggestion
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Columns; x++ {
			if _, taken := occupied[[2]int{x, y}]; taken {
				continue
			}

			s := Suggestion{X: x, Y: y}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbor, ok := occupied[[2]int{x + dx, y + dy}]
					if !ok {
						continue
					}
					ndef := catalog.FindPlant(neighbor.TypeID)
					if ndef == nil {
						continue
					}
					if def.Avoids(ndef.ID) || ndef.Avoids(def.ID) {
						s.Score -= 2
						s.Conflicts = append(s.Conflicts, ndef.Name)
						continue
					}
					if def.IsCompanion(ndef.ID) || ndef.IsCompanion(def.ID) {
						s.Score++
						s.Companions = append(s.Companions, ndef.Name)
					}
				}
			}

			if s.Score > 0 {
				candidates = append(candidates, s)
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
