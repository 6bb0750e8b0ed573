package widgets

import (
	"testing"

	"fyne.io/fyne/v2"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// 3.2m / 0.5m rounds up to 7 columns, so the drawn plot is wider than the
// nominal garden width. Taps must resolve against the drawn cell pitch.
func tapTestCanvas() *GardenCanvas {
	settings := model.GardenSettings{
		Name:     "Tap Test",
		Width:    3.2,
		Length:   2.1,
		GridSize: 0.5,
	}
	return NewGardenCanvas(settings, &model.Catalog{}, 700, 500)
}

func TestTappedMatchesDrawnCells(t *testing.T) {
	gc := tapTestCanvas()

	cellPx, _, _ := gc.plotPixels()
	cols, rows := gc.grid.CellCount()
	if cols != 7 || rows != 5 {
		t.Fatalf("grid is %dx%d, want 7x5", cols, rows)
	}

	tests := []struct {
		cellX, cellY int
	}{
		{0, 0},
		{5, 1},
		{6, 4}, // last cell in both axes
		{3, 2},
	}
	for _, tt := range tests {
		gotX, gotY := -1, -1
		gc.OnCellTapped = func(x, y int) { gotX, gotY = x, y }

		// Tap the centre of the drawn cell
		px := (float32(tt.cellX) + 0.5) * cellPx
		py := (float32(tt.cellY) + 0.5) * cellPx
		gc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(px, py)})

		if gotX != tt.cellX || gotY != tt.cellY {
			t.Errorf("tap in drawn cell (%d,%d) reported (%d,%d)", tt.cellX, tt.cellY, gotX, gotY)
		}
	}
}

func TestTappedOutsidePlotIgnored(t *testing.T) {
	gc := tapTestCanvas()

	_, plotW, plotH := gc.plotPixels()
	fired := false
	gc.OnCellTapped = func(x, y int) { fired = true }

	gc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(plotW+1, 5)})
	gc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(5, plotH+1)})

	if fired {
		t.Error("tap outside the plot should not fire OnCellTapped")
	}
}

func TestPlotPixelsUniformPitch(t *testing.T) {
	gc := tapTestCanvas()

	cellPx, plotW, plotH := gc.plotPixels()
	cols, rows := gc.grid.CellCount()

	if got := float32(cols) * cellPx; got != plotW {
		t.Errorf("plot width %v != %d columns * %v pitch", plotW, cols, cellPx)
	}
	if got := float32(rows) * cellPx; got != plotH {
		t.Errorf("plot height %v != %d rows * %v pitch", plotH, rows, cellPx)
	}
	if plotW > 700+0.001 || plotH > 500+0.001 {
		t.Errorf("plot %vx%v exceeds the %vx%v bounds", plotW, plotH, 700, 500)
	}
}
