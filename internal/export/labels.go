package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/GardenPlot/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each plant-stake label's QR code.
type LabelInfo struct {
	Name        string `json:"name"`
	Botanical   string `json:"botanical"`
	TypeID      string `json:"type_id"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	PlantedDate string `json:"planted"`
	Water       string `json:"water,omitempty"`
	Sun         string `json:"sun,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded plant stake labels, one per
// placed plant. Each label carries the plant name, botanical name, cell
// position and planted date, plus a QR code encoding the same metadata
// as JSON. Labels are laid out on a standard label sheet format
// (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, plants []model.PlantPlacement, catalog *model.Catalog) error {
	if len(plants) == 0 {
		return fmt.Errorf("no plants placed to generate labels for")
	}

	var labels []LabelInfo
	for _, p := range plants {
		info := LabelInfo{
			Name:        p.TypeID,
			TypeID:      p.TypeID,
			X:           p.X,
			Y:           p.Y,
			PlantedDate: p.PlantedDate.Format("2006-01-02"),
		}
		if def := catalog.FindPlant(p.TypeID); def != nil {
			info.Name = def.Name
			info.Botanical = def.Botanical
			info.Water = string(def.Water)
			info.Sun = string(def.Sun)
		}
		labels = append(labels, info)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Name, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single stake label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d_%d", info.TypeID, info.X, info.Y)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text block on the left
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding+1)
	pdf.CellFormat(textW, 4, info.Name, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(textX, y+labelPadding+6)
	pdf.CellFormat(textW, 3.5, info.Botanical, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding+11)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("Cell (%d,%d)", info.X, info.Y), "", 0, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+15)
	pdf.CellFormat(textW, 3.5, "Planted "+info.PlantedDate, "", 0, "L", false, 0, "")

	return nil
}
