package export

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/GardenPlot/internal/model"
)

// rgb represents a parsed display color.
type rgb struct {
	R, G, B int
}

// fallbackColors cycle when a catalog entry has no parsable display color.
var fallbackColors = []rgb{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF plan sheet: the garden layout diagram on the
// first page and a statistics/compatibility summary on the second.
func ExportPDF(path string, settings model.GardenSettings, plants []model.PlantPlacement, structures []model.StructurePlacement, paths []model.PathSegment, catalog *model.Catalog) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, settings, plants, structures, paths, catalog)

	pdf.AddPage()
	renderSummaryPage(pdf, settings, plants, structures, paths, catalog)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the garden grid and all placements.
func renderLayoutPage(pdf *fpdf.Fpdf, settings model.GardenSettings, plants []model.PlantPlacement, structures []model.StructurePlacement, paths []model.PathSegment, catalog *model.Catalog) {
	grid := model.NewGrid(settings)

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%.1f x %.1f m, %.2f m cells)", settings.Name, settings.Width, settings.Length, settings.GridSize)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	summary := model.Summarize(grid, plants, structures, paths, catalog)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Plants: %d | Structures: %d | Paths: %d | Coverage: %.1f%%",
		summary.PlantCount, summary.StructureCount, summary.PathCount, summary.CoveragePercent)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area and scale to fit
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scaleX := drawWidth / float64(grid.Columns)
	scaleY := drawHeight / float64(grid.Rows)
	cellMM := math.Min(scaleX, scaleY)

	plotW := float64(grid.Columns) * cellMM
	plotH := float64(grid.Rows) * cellMM

	offsetX := marginLeft + (drawWidth-plotW)/2
	offsetY := drawAreaTop

	// Soil background
	pdf.SetFillColor(205, 186, 150)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, plotW, plotH, "FD")

	// Paths under everything else
	for _, p := range paths {
		col := parseHexColor(p.Color, rgb{R: 188, G: 170, B: 164})
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(offsetX+float64(p.X)*cellMM, offsetY+float64(p.Y)*cellMM,
			float64(p.Width)*cellMM, float64(p.Length)*cellMM, "F")
	}

	// Structures
	for _, s := range structures {
		col := parseHexColor(s.Color, rgb{R: 120, G: 120, B: 120})
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(60, 60, 60)
		pdf.SetLineWidth(0.3)
		pdf.Rect(offsetX+float64(s.X)*cellMM, offsetY+float64(s.Y)*cellMM,
			float64(s.Width)*cellMM, float64(s.Length)*cellMM, "FD")
	}

	// Grid lines over paths/structures, under plants
	pdf.SetDrawColor(150, 140, 120)
	pdf.SetLineWidth(0.1)
	for cx := 1; cx < grid.Columns; cx++ {
		x := offsetX + float64(cx)*cellMM
		pdf.Line(x, offsetY, x, offsetY+plotH)
	}
	for cy := 1; cy < grid.Rows; cy++ {
		y := offsetY + float64(cy)*cellMM
		pdf.Line(offsetX, y, offsetX+plotW, y)
	}

	// Plants
	for i, p := range plants {
		def := catalog.FindPlant(p.TypeID)
		col := fallbackColors[i%len(fallbackColors)]
		name := p.TypeID
		if def != nil {
			col = parseHexColor(def.Color, col)
			name = def.Name
		}

		size := float64(p.Size) * cellMM
		px := offsetX + float64(p.X)*cellMM
		py := offsetY + float64(p.Y)*cellMM

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, size, size, "FD")

		if size > 12 {
			pdf.SetFont("Helvetica", "", labelFontSize(size))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(name)
			if labelW < size-1 {
				pdf.SetXY(px+(size-labelW)/2, py+size/2-2)
				pdf.CellFormat(labelW, 4, name, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, settings, offsetX, offsetY, plotW, plotH)
	drawPlantLegend(pdf, plants, catalog, offsetY+plotH+5)
}

// drawDimensionAnnotations adds width and length labels outside the plot rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, settings model.GardenSettings, offsetX, offsetY, plotW, plotH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.1f m", settings.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(plotW-wLabelW)/2, offsetY+plotH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	lengthLabel := fmt.Sprintf("%.1f m", settings.Length)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+plotH/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX-3-lLabelW/2, offsetY+plotH/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPlantLegend renders a compact legend of placed plant types.
func drawPlantLegend(pdf *fpdf.Fpdf, plants []model.PlantPlacement, catalog *model.Catalog, startY float64) {
	if len(plants) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Plants placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	seen := make(map[string]bool)
	fallbackIdx := 0
	for _, p := range plants {
		if seen[p.TypeID] {
			continue
		}
		seen[p.TypeID] = true

		col := fallbackColors[fallbackIdx%len(fallbackColors)]
		fallbackIdx++
		label := p.TypeID
		if def := catalog.FindPlant(p.TypeID); def != nil {
			col = parseHexColor(def.Color, col)
			label = fmt.Sprintf("%s (%s)", def.Name, def.Botanical)
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws coverage statistics and the compatibility report.
func renderSummaryPage(pdf *fpdf.Fpdf, settings model.GardenSettings, plants []model.PlantPlacement, structures []model.StructurePlacement, paths []model.PathSegment, catalog *model.Catalog) {
	grid := model.NewGrid(settings)
	summary := model.Summarize(grid, plants, structures, paths, catalog)
	report := model.Analyze(plants, catalog)
	overlaps := model.FormatOverlapWarnings(model.OverlapWarnings(plants, structures, paths, catalog))

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Garden Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	cols, rows := grid.CellCount()
	summaryItems := []struct {
		label string
		value string
	}{
		{"Grid", fmt.Sprintf("%d x %d cells", cols, rows)},
		{"Plants Placed", fmt.Sprintf("%d", summary.PlantCount)},
		{"Structures", fmt.Sprintf("%d", summary.StructureCount)},
		{"Path Segments", fmt.Sprintf("%d", summary.PathCount)},
		{"Planted Coverage", fmt.Sprintf("%.1f%%", summary.CoveragePercent)},
		{"Conflicts", fmt.Sprintf("%d", len(report.Conflicts))},
		{"Benefits", fmt.Sprintf("%d", len(report.Benefits))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	y = renderFindingList(pdf, "Companion Conflicts", report.Conflicts, rgb{R: 200, G: 0, B: 0}, y)
	y = renderFindingList(pdf, "Companion Benefits", report.Benefits, rgb{R: 0, G: 130, B: 0}, y)

	if len(overlaps) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 120, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Structure Overlaps", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, msg := range overlaps {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+msg, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by GardenPlot - Garden Layout Planner", "", 0, "C", false, 0, "")
}

// renderFindingList draws one titled list of compatibility entries and
// returns the next free y position.
func renderFindingList(pdf *fpdf.Fpdf, title string, entries []model.CompatibilityEntry, col rgb, y float64) float64 {
	if len(entries) == 0 {
		return y
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(col.R, col.G, col.B)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(200, 7, title, "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, e := range entries {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(200, 5, "- "+e.Reason, "", 0, "L", false, 0, "")
		y += 5
	}
	return y + 3
}

// labelFontSize returns an appropriate font size for a cell of the given size in mm.
func labelFontSize(size float64) float64 {
	switch {
	case size > 40:
		return 8
	case size > 20:
		return 7
	default:
		return 6
	}
}

// parseHexColor parses a #RRGGBB display color, falling back when malformed.
func parseHexColor(s string, fallback rgb) rgb {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return rgb{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}
}
