package model

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	cat := testCatalog()
	grid := NewGrid(GardenSettings{Width: 2.0, Length: 2.0, GridSize: 0.5}) // 4x4 = 16 cells

	plants := []PlantPlacement{
		{ID: "a", TypeID: "tomato", X: 0, Y: 0, Size: 2}, // 4 cells
		{ID: "b", TypeID: "basil", X: 3, Y: 3, Size: 1},  // 1 cell
	}
	structures := []StructurePlacement{{ID: "s1", TypeID: "raised-bed", X: 0, Y: 2, Width: 4, Length: 2}}
	paths := []PathSegment{{ID: "w1", X: 2, Y: 0, Width: 1, Length: 2}}

	sum := Summarize(grid, plants, structures, paths, cat)

	if sum.TotalCells != 16 {
		t.Errorf("TotalCells = %d, want 16", sum.TotalCells)
	}
	if sum.PlantedCells != 5 {
		t.Errorf("PlantedCells = %d, want 5", sum.PlantedCells)
	}
	if math.Abs(sum.CoveragePercent-31.25) > 1e-9 {
		t.Errorf("CoveragePercent = %f, want 31.25", sum.CoveragePercent)
	}
	if sum.PlantCount != 2 || sum.StructureCount != 1 || sum.PathCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", sum.PlantCount, sum.StructureCount, sum.PathCount)
	}
	if sum.WaterBreakdown[WaterHigh] != 1 || sum.WaterBreakdown[WaterModerate] != 1 {
		t.Errorf("water breakdown = %v", sum.WaterBreakdown)
	}
}

func TestSummarizeSharedCellsCountOnce(t *testing.T) {
	cat := testCatalog()
	grid := NewGrid(GardenSettings{Width: 2.0, Length: 2.0, GridSize: 0.5})

	// Two footprints covering the same cell: (1,1) is shared.
	plants := []PlantPlacement{
		{ID: "a", TypeID: "tomato", X: 0, Y: 0, Size: 2},
		{ID: "b", TypeID: "tomato", X: 1, Y: 1, Size: 1},
	}

	sum := Summarize(grid, plants, nil, nil, cat)
	if sum.PlantedCells != 4 {
		t.Errorf("PlantedCells = %d, want 4 (shared cell counted once)", sum.PlantedCells)
	}
}

func TestSummarizeClipsToGrid(t *testing.T) {
	cat := testCatalog()
	grid := NewGrid(GardenSettings{Width: 1.0, Length: 1.0, GridSize: 0.5}) // 2x2

	// Footprint spills past the grid edge; only in-bounds cells count.
	plants := []PlantPlacement{{ID: "a", TypeID: "tomato", X: 1, Y: 1, Size: 3}}

	sum := Summarize(grid, plants, nil, nil, cat)
	if sum.PlantedCells != 1 {
		t.Errorf("PlantedCells = %d, want 1", sum.PlantedCells)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	grid := NewGrid(DefaultSettings())
	sum := Summarize(grid, nil, nil, nil, testCatalog())
	if sum.PlantedCells != 0 || sum.CoveragePercent != 0 {
		t.Errorf("empty plan summary = %+v", sum)
	}
}
