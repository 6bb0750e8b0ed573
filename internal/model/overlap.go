package model

import "fmt"

// OverlapWarning reports a plant whose footprint intersects a structure
// or path. Structures and paths never block plant placement; overlaps are
// surfaced as warnings so the user can resolve them deliberately.
type OverlapWarning struct {
	PlantID      string `json:"plantId"`
	PlantName    string `json:"plantName"`
	ObstacleID   string `json:"obstacleId"`
	ObstacleName string `json:"obstacleName"`
	X            int    `json:"x"` // plant origin cell
	Y            int    `json:"y"`
}

// OverlapWarnings scans every placed plant against all structures and
// paths and reports footprint intersections. At most one warning is kept
// per (plant, obstacle) pair.
func OverlapWarnings(plants []PlantPlacement, structures []StructurePlacement, paths []PathSegment, catalog *Catalog) []OverlapWarning {
	var warnings []OverlapWarning
	seen := make(map[[2]string]bool)

	for _, p := range plants {
		name := p.TypeID
		if def := catalog.FindPlant(p.TypeID); def != nil {
			name = def.Name
		}

		for _, st := range structures {
			if !rectsOverlap(p.X, p.Y, p.Size, p.Size, st.X, st.Y, st.Width, st.Length) {
				continue
			}
			obstacle := st.TypeID
			if def := catalog.FindStructure(st.TypeID); def != nil {
				obstacle = def.Name
			}
			key := [2]string{p.ID, st.ID}
			if !seen[key] {
				seen[key] = true
				warnings = append(warnings, OverlapWarning{
					PlantID:      p.ID,
					PlantName:    name,
					ObstacleID:   st.ID,
					ObstacleName: obstacle,
					X:            p.X,
					Y:            p.Y,
				})
			}
		}

		for _, path := range paths {
			if !rectsOverlap(p.X, p.Y, p.Size, p.Size, path.X, path.Y, path.Width, path.Length) {
				continue
			}
			key := [2]string{p.ID, path.ID}
			if !seen[key] {
				seen[key] = true
				warnings = append(warnings, OverlapWarning{
					PlantID:      p.ID,
					PlantName:    name,
					ObstacleID:   path.ID,
					ObstacleName: "Path",
					X:            p.X,
					Y:            p.Y,
				})
			}
		}
	}

	return warnings
}

// FormatOverlapWarnings produces human-readable messages from overlap data.
func FormatOverlapWarnings(warnings []OverlapWarning) []string {
	var messages []string
	for _, w := range warnings {
		messages = append(messages, fmt.Sprintf(
			"%s at (%d,%d) overlaps %s", w.PlantName, w.X, w.Y, w.ObstacleName))
	}
	return messages
}

// rectsOverlap reports whether two cell-aligned rectangles intersect.
func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
