package widgets

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// fallbackPlantColors — cycle through these when a definition has no color.
var fallbackPlantColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 220},  // green
	{R: 255, G: 152, B: 0, A: 220},  // orange
	{R: 156, G: 39, B: 176, A: 220}, // purple
	{R: 0, G: 188, B: 212, A: 220},  // cyan
	{R: 244, G: 67, B: 54, A: 220},  // red
	{R: 255, G: 235, B: 59, A: 220}, // yellow
}

// GardenCanvas renders the garden plot: soil background, paths, structures,
// grid lines, and placed plants. Tapping a cell reports its grid
// coordinates through OnCellTapped.
type GardenCanvas struct {
	widget.BaseWidget
	settings   model.GardenSettings
	grid       model.Grid
	catalog    *model.Catalog
	plants     []model.PlantPlacement
	structures []model.StructurePlacement
	paths      []model.PathSegment
	maxWidth   float32
	maxHeight  float32

	// OnCellTapped is invoked with grid cell coordinates when the user
	// taps inside the plot.
	OnCellTapped func(x, y int)
}

func NewGardenCanvas(settings model.GardenSettings, catalog *model.Catalog, maxW, maxH float32) *GardenCanvas {
	gc := &GardenCanvas{
		settings:  settings,
		grid:      model.NewGrid(settings),
		catalog:   catalog,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	gc.ExtendBaseWidget(gc)
	return gc
}

// SetState replaces the rendered placements and redraws.
func (gc *GardenCanvas) SetState(plants []model.PlantPlacement, structures []model.StructurePlacement, paths []model.PathSegment) {
	gc.plants = plants
	gc.structures = structures
	gc.paths = paths
	gc.Refresh()
}

// SetSettings updates the garden dimensions and redraws.
func (gc *GardenCanvas) SetSettings(settings model.GardenSettings) {
	gc.settings = settings
	gc.grid = model.NewGrid(settings)
	gc.Refresh()
}

// scale returns pixels per meter, fitting the plot into the max bounds.
// The plot spans whole cells, which can extend past the nominal garden
// dimensions when they are not an exact multiple of the cell size.
func (gc *GardenCanvas) scale() float32 {
	cols, rows := gc.grid.CellCount()
	sx := gc.maxWidth / float32(float64(cols)*gc.grid.CellSize)
	sy := gc.maxHeight / float32(float64(rows)*gc.grid.CellSize)
	if sy < sx {
		return sy
	}
	return sx
}

// plotPixels returns the cell pitch and total plot size in pixels. The
// renderer and Tapped share this pitch, so a tap always resolves to the
// cell it was drawn in.
func (gc *GardenCanvas) plotPixels() (cellPx, plotW, plotH float32) {
	cellPx = float32(gc.grid.CellSize) * gc.scale()
	cols, rows := gc.grid.CellCount()
	return cellPx, float32(cols) * cellPx, float32(rows) * cellPx
}

// Tapped converts the tap position to a grid cell and fires OnCellTapped.
func (gc *GardenCanvas) Tapped(ev *fyne.PointEvent) {
	if gc.OnCellTapped == nil {
		return
	}
	_, plotW, plotH := gc.plotPixels()
	x, y, err := gc.grid.CellAt(float64(ev.Position.X), float64(ev.Position.Y), float64(plotW), float64(plotH))
	if err != nil {
		return
	}
	gc.OnCellTapped(x, y)
}

func (gc *GardenCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newGardenCanvasRenderer(gc)
}

type gardenCanvasRenderer struct {
	gc      *GardenCanvas
	objects []fyne.CanvasObject
}

func newGardenCanvasRenderer(gc *GardenCanvas) *gardenCanvasRenderer {
	r := &gardenCanvasRenderer{gc: gc}
	r.rebuild()
	return r
}

func (r *gardenCanvasRenderer) rebuild() {
	r.objects = nil

	gc := r.gc
	cellPx, canvasW, canvasH := gc.plotPixels()

	// Soil background
	bg := canvas.NewRectangle(color.NRGBA{R: 141, G: 110, B: 99, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Paths sit under everything else
	for _, seg := range gc.paths {
		rect := canvas.NewRectangle(hexToNRGBA(seg.Color, color.NRGBA{R: 188, G: 170, B: 164, A: 255}))
		rect.Resize(fyne.NewSize(float32(seg.Width)*cellPx, float32(seg.Length)*cellPx))
		rect.Move(fyne.NewPos(float32(seg.X)*cellPx, float32(seg.Y)*cellPx))
		r.objects = append(r.objects, rect)
	}

	// Structures
	for _, st := range gc.structures {
		fill := color.NRGBA{R: 120, G: 144, B: 156, A: 230}
		name := st.TypeID
		if def := gc.catalog.FindStructure(st.TypeID); def != nil {
			fill = hexToNRGBA(def.Color, fill)
			name = def.Name
		}
		w := float32(st.Width) * cellPx
		h := float32(st.Length) * cellPx
		rect := canvas.NewRectangle(fill)
		rect.Resize(fyne.NewSize(w, h))
		rect.Move(fyne.NewPos(float32(st.X)*cellPx, float32(st.Y)*cellPx))
		r.objects = append(r.objects, rect)

		if w > 40 && h > 16 {
			label := canvas.NewText(name, color.White)
			label.TextSize = 10
			label.Move(fyne.NewPos(float32(st.X)*cellPx+3, float32(st.Y)*cellPx+2))
			r.objects = append(r.objects, label)
		}
	}

	// Grid lines
	cols, rows := gc.grid.CellCount()
	lineColor := color.NRGBA{R: 62, G: 39, B: 35, A: 90}
	for c := 0; c <= cols; c++ {
		line := canvas.NewLine(lineColor)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(float32(c)*cellPx, 0)
		line.Position2 = fyne.NewPos(float32(c)*cellPx, canvasH)
		r.objects = append(r.objects, line)
	}
	for row := 0; row <= rows; row++ {
		line := canvas.NewLine(lineColor)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(0, float32(row)*cellPx)
		line.Position2 = fyne.NewPos(canvasW, float32(row)*cellPx)
		r.objects = append(r.objects, line)
	}

	// Plants on top
	for i, p := range gc.plants {
		fill := fallbackPlantColors[i%len(fallbackPlantColors)]
		name := p.TypeID
		if def := gc.catalog.FindPlant(p.TypeID); def != nil {
			fill = hexToNRGBA(def.Color, fill)
			name = def.Name
		}

		size := float32(p.Size) * cellPx
		px := float32(p.X) * cellPx
		py := float32(p.Y) * cellPx

		rect := canvas.NewRectangle(fill)
		rect.Resize(fyne.NewSize(size, size))
		rect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, rect)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		border.StrokeWidth = 1
		border.Resize(fyne.NewSize(size, size))
		border.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, border)

		if size > 30 {
			label := canvas.NewText(name, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}

	// Plot border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 62, G: 39, B: 35, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)
}

func (r *gardenCanvasRenderer) Layout(size fyne.Size)        {}
func (r *gardenCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *gardenCanvasRenderer) Destroy()                     {}
func (r *gardenCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *gardenCanvasRenderer) MinSize() fyne.Size {
	_, w, h := r.gc.plotPixels()
	return fyne.NewSize(w, h)
}

// hexToNRGBA parses a "#RRGGBB" color string, returning fallback on
// malformed input.
func hexToNRGBA(hex string, fallback color.NRGBA) color.NRGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

// FormatCellLabel describes a cell for status displays.
func FormatCellLabel(x, y int, cellSize float64) string {
	return fmt.Sprintf("Cell (%d, %d) — %.1fm × %.1fm", x, y, cellSize, cellSize)
}
