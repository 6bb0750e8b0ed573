package model

// PlanSummary holds aggregate statistics about the current plan, shown in
// the UI footer and on the PDF summary page.
type PlanSummary struct {
	TotalCells      int               `json:"total_cells"`
	PlantedCells    int               `json:"planted_cells"`
	CoveragePercent float64           `json:"coverage_percent"`
	PlantCount      int               `json:"plant_count"`
	StructureCount  int               `json:"structure_count"`
	PathCount       int               `json:"path_count"`
	WaterBreakdown  map[WaterNeed]int `json:"water_breakdown"` // plants per watering need
}

// Summarize computes plan statistics from the current placements.
// Planted cells count each plant's full footprint, clipped to the grid;
// cells shared by overlapping footprints are counted once.
func Summarize(grid Grid, plants []PlantPlacement, structures []StructurePlacement, paths []PathSegment, catalog *Catalog) PlanSummary {
	summary := PlanSummary{
		TotalCells:     grid.Columns * grid.Rows,
		PlantCount:     len(plants),
		StructureCount: len(structures),
		PathCount:      len(paths),
		WaterBreakdown: make(map[WaterNeed]int),
	}

	occupied := make(map[cell]bool)
	for _, p := range plants {
		for dy := 0; dy < p.Size; dy++ {
			for dx := 0; dx < p.Size; dx++ {
				x, y := p.X+dx, p.Y+dy
				if grid.InBounds(x, y) {
					occupied[cell{x, y}] = true
				}
			}
		}
		if def := catalog.FindPlant(p.TypeID); def != nil {
			summary.WaterBreakdown[def.Water]++
		}
	}
	summary.PlantedCells = len(occupied)

	if summary.TotalCells > 0 {
		summary.CoveragePercent = float64(summary.PlantedCells) / float64(summary.TotalCells) * 100.0
	}
	return summary
}
