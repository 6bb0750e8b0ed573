package model

import (
	"fmt"
	"math"
)

// Grid converts between real-world garden dimensions and discrete cells.
// Cell (0,0) is the top-left corner; x grows rightward along Width and
// y grows downward along Length.
type Grid struct {
	Columns  int
	Rows     int
	CellSize float64 // metres per cell edge
}

// NewGrid computes the cell grid for the given settings. Partial cells at
// the far edges round up, so the grid always covers the whole plot.
func NewGrid(s GardenSettings) Grid {
	return Grid{
		Columns:  int(math.Ceil(s.Width / s.GridSize)),
		Rows:     int(math.Ceil(s.Length / s.GridSize)),
		CellSize: s.GridSize,
	}
}

// CellCount returns the grid dimensions as (columns, rows).
func (g Grid) CellCount() (int, int) {
	return g.Columns, g.Rows
}

// InBounds reports whether the cell lies inside [0,Columns) x [0,Rows).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Columns && y >= 0 && y < g.Rows
}

// CheckBounds returns ErrOutOfBounds (wrapped with the cell coordinates)
// when the cell is outside the grid.
func (g Grid) CheckBounds(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("cell (%d,%d) is %w (grid is %dx%d)", x, y, ErrOutOfBounds, g.Columns, g.Rows)
	}
	return nil
}

// CellAt converts renderer pixel coordinates into a grid cell. The renderer
// owns pixel space; it passes its current drawing dimensions and the grid
// floor-divides by the per-cell pixel size. Returns ErrOutOfBounds when the
// click falls outside the plot.
func (g Grid) CellAt(pixelX, pixelY, pixelWidth, pixelHeight float64) (int, int, error) {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return 0, 0, fmt.Errorf("render area %.0fx%.0f is degenerate", pixelWidth, pixelHeight)
	}
	cellW := pixelWidth / float64(g.Columns)
	cellH := pixelHeight / float64(g.Rows)
	x := int(math.Floor(pixelX / cellW))
	y := int(math.Floor(pixelY / cellH))
	if err := g.CheckBounds(x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// FootprintCells converts a real-world footprint width into whole grid
// cells, never less than one.
func (g Grid) FootprintCells(width float64) int {
	cells := int(math.Ceil(width / g.CellSize))
	if cells < 1 {
		return 1
	}
	return cells
}
