// Package importer provides CSV, Excel and DXF import for catalog data,
// plus re-validating import of exported plan documents. CSV import
// supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/GardenPlot/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a catalog import operation.
type ImportResult struct {
	Plants   []model.PlantDefinition
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name       int
	Botanical  int
	Category   int
	Spacing    int
	Width      int
	Height     int
	Water      int
	Sun        int
	Tags       int
	Companions int
	Avoid      int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":       {"name", "plant", "plant name", "label", "common name"},
	"botanical":  {"botanical", "botanical name", "latin", "latin name", "species"},
	"category":   {"category", "type", "group", "kind"},
	"spacing":    {"spacing", "spacing m", "plant spacing", "distance"},
	"width":      {"width", "w", "footprint", "spread"},
	"height":     {"height", "h", "mature height"},
	"water":      {"water", "water need", "watering", "irrigation"},
	"sun":        {"sun", "sun need", "light", "exposure"},
	"tags":       {"tags", "tag", "labels"},
	"companions": {"companions", "companion", "companion plants", "friends"},
	"avoid":      {"avoid", "avoid plants", "antagonists", "enemies"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or
// a default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1, Botanical: -1, Category: -1, Spacing: -1, Width: -1,
		Height: -1, Water: -1, Sun: -1, Tags: -1, Companions: -1, Avoid: -1,
	}

	assign := func(role string, idx int) {
		switch role {
		case "name":
			if mapping.Name == -1 {
				mapping.Name = idx
			}
		case "botanical":
			if mapping.Botanical == -1 {
				mapping.Botanical = idx
			}
		case "category":
			if mapping.Category == -1 {
				mapping.Category = idx
			}
		case "spacing":
			if mapping.Spacing == -1 {
				mapping.Spacing = idx
			}
		case "width":
			if mapping.Width == -1 {
				mapping.Width = idx
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = idx
			}
		case "water":
			if mapping.Water == -1 {
				mapping.Water = idx
			}
		case "sun":
			if mapping.Sun == -1 {
				mapping.Sun = idx
			}
		case "tags":
			if mapping.Tags == -1 {
				mapping.Tags = idx
			}
		case "companions":
			if mapping.Companions == -1 {
				mapping.Companions = idx
			}
		case "avoid":
			if mapping.Avoid == -1 {
				mapping.Avoid = idx
			}
		}
	}

	isHeader := false
	for i, cellValue := range row {
		normalized := strings.ToLower(strings.TrimSpace(cellValue))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Botanical, Width, Spacing
		return ColumnMapping{
			Name: 0, Botanical: 1, Width: 2, Spacing: 3,
			Category: -1, Height: -1, Water: -1, Sun: -1,
			Tags: -1, Companions: -1, Avoid: -1,
		}, false
	}

	return mapping, true
}

// parseWaterNeed converts a water column value to a model.WaterNeed.
// Returns the value and whether the string was recognized.
func parseWaterNeed(s string) (model.WaterNeed, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return model.WaterLow, true
	case "", "moderate", "medium", "m":
		return model.WaterModerate, true
	case "high", "h":
		return model.WaterHigh, true
	default:
		return model.WaterModerate, false
	}
}

// parseSunNeed converts a sun column value to a model.SunNeed.
func parseSunNeed(s string) (model.SunNeed, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full", "full sun", "f":
		return model.SunFull, true
	case "partial", "partial sun", "part shade", "p":
		return model.SunPartial, true
	case "shade", "full shade", "s":
		return model.SunShade, true
	default:
		return model.SunFull, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// splitList parses a multi-value cell (tags, companions, avoid) on
// semicolons, falling back to commas when no semicolon is present.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	sep := ";"
	if !strings.Contains(s, ";") {
		sep = ","
	}
	var values []string
	for _, v := range strings.Split(s, sep) {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// slugID derives a catalog id from a display name.
func slugID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// parseRow extracts a PlantDefinition from a row using the given column
// mapping. Returns the definition, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.PlantDefinition, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		return model.PlantDefinition{}, fmt.Sprintf("%s: Missing plant name", rowLabel), ""
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.PlantDefinition{}, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil || width <= 0 {
		return model.PlantDefinition{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	spacing := width
	if spacingStr := getCell(row, mapping.Spacing); spacingStr != "" {
		spacing, err = strconv.ParseFloat(spacingStr, 64)
		if err != nil || spacing <= 0 {
			return model.PlantDefinition{}, fmt.Sprintf("%s: Invalid spacing '%s'", rowLabel, spacingStr), ""
		}
	}

	var height float64
	if heightStr := getCell(row, mapping.Height); heightStr != "" {
		height, err = strconv.ParseFloat(heightStr, 64)
		if err != nil || height < 0 {
			return model.PlantDefinition{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
		}
	}

	var warning string
	water, ok := parseWaterNeed(getCell(row, mapping.Water))
	if !ok {
		warning = fmt.Sprintf("%s: Unknown water need '%s', defaulting to moderate", rowLabel, getCell(row, mapping.Water))
	}
	sun, ok := parseSunNeed(getCell(row, mapping.Sun))
	if !ok && warning == "" {
		warning = fmt.Sprintf("%s: Unknown sun need '%s', defaulting to full", rowLabel, getCell(row, mapping.Sun))
	}

	category := getCell(row, mapping.Category)
	if category == "" {
		category = "vegetable"
	}

	def := model.PlantDefinition{
		ID:         slugID(name),
		Name:       name,
		Botanical:  getCell(row, mapping.Botanical),
		Category:   category,
		Spacing:    spacing,
		Height:     height,
		Width:      width,
		Water:      water,
		Sun:        sun,
		Tags:       splitList(getCell(row, mapping.Tags)),
		Companions: splitList(getCell(row, mapping.Companions)),
		Avoid:      splitList(getCell(row, mapping.Avoid)),
		Color:      "#66BB6A",
	}
	return def, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cellValue := range row {
		if strings.TrimSpace(cellValue) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports plant definitions from a CSV file. It automatically
// detects the delimiter and maps columns by header names. Supports comma,
// semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports plant definitions from a CSV reader with a
// specific delimiter. This is useful for testing or when the delimiter is
// already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports plant definitions from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into definitions.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Name == -1 {
			missing = append(missing, "Name")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// No recognized header: if the width column of the first row is not
		// numeric, treat it as an unrecognized header and skip it.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][2]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	seen := make(map[string]bool)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		def, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		if seen[def.ID] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Duplicate plant %q skipped", rowLabel, def.Name))
			continue
		}
		seen[def.ID] = true

		result.Plants = append(result.Plants, def)
	}

	return result
}
