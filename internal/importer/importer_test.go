package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/GardenPlot/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Width,Spacing,Water\nTomato,0.5,0.6,high\nBasil,0.25,0.3,moderate\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Width;Spacing;Water\nTomato;0,5;0,6;high\nBasil;0,25;0,3;moderate\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tWidth\tSpacing\nTomato\t0.5\t0.6\nBasil\t0.25\t0.3\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Width|Spacing\nTomato|0.5|0.6\nBasil|0.25|0.3\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "Botanical", "Width", "Spacing", "Water", "Sun", "Tags"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Name at 0, got %d", mapping.Name)
	}
	if mapping.Botanical != 1 {
		t.Errorf("expected Botanical at 1, got %d", mapping.Botanical)
	}
	if mapping.Width != 2 {
		t.Errorf("expected Width at 2, got %d", mapping.Width)
	}
	if mapping.Water != 4 {
		t.Errorf("expected Water at 4, got %d", mapping.Water)
	}
}

func TestDetectColumns_Aliases(t *testing.T) {
	row := []string{"Plant Name", "Latin Name", "Spread", "Distance", "Watering", "Exposure"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("aliased headers should be detected")
	}
	if mapping.Name != 0 || mapping.Botanical != 1 || mapping.Width != 2 {
		t.Errorf("alias mapping wrong: %+v", mapping)
	}
	if mapping.Spacing != 3 || mapping.Water != 4 || mapping.Sun != 5 {
		t.Errorf("alias mapping wrong: %+v", mapping)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	row := []string{"NAME", "width", "Companions"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("case-folded headers should be detected")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Companions != 2 {
		t.Errorf("mapping = %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Tomato", "Solanum lycopersicum", "0.5", "0.6"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("data row should not be detected as header")
	}
	// Positional fallback: Name, Botanical, Width, Spacing
	if mapping.Name != 0 || mapping.Botanical != 1 || mapping.Width != 2 || mapping.Spacing != 3 {
		t.Errorf("positional mapping = %+v", mapping)
	}
}

// ─── ImportCSV Tests ───────────────────────────────────────

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plants.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTempCSV(t,
		"Name,Botanical,Width,Spacing,Water,Sun,Tags,Companions,Avoid\n"+
			"Tomato,Solanum lycopersicum,0.5,0.6,high,full,vegetable;summer,basil;carrot,potato\n"+
			"Basil,Ocimum basilicum,0.25,0.3,moderate,full,herb,tomato,\n")

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Plants) != 2 {
		t.Fatalf("imported %d plants, want 2", len(result.Plants))
	}

	tomato := result.Plants[0]
	if tomato.ID != "tomato" || tomato.Name != "Tomato" {
		t.Errorf("tomato = %+v", tomato)
	}
	if tomato.Width != 0.5 || tomato.Spacing != 0.6 {
		t.Errorf("tomato dimensions = %v/%v", tomato.Width, tomato.Spacing)
	}
	if tomato.Water != model.WaterHigh || tomato.Sun != model.SunFull {
		t.Errorf("tomato needs = %v/%v", tomato.Water, tomato.Sun)
	}
	if len(tomato.Companions) != 2 || tomato.Companions[0] != "basil" {
		t.Errorf("tomato companions = %v", tomato.Companions)
	}
	if len(tomato.Avoid) != 1 || tomato.Avoid[0] != "potato" {
		t.Errorf("tomato avoid = %v", tomato.Avoid)
	}
	if len(tomato.Tags) != 2 {
		t.Errorf("tomato tags = %v", tomato.Tags)
	}
}

func TestImportCSV_BadRowsReportedAndSkipped(t *testing.T) {
	path := writeTempCSV(t,
		"Name,Width\n"+
			"Tomato,0.5\n"+
			",0.4\n"+ // missing name
			"Pepper,\n"+ // missing width
			"Bean,notanumber\n"+ // invalid width
			"Carrot,0.1\n")

	result := ImportCSV(path)

	if len(result.Plants) != 2 {
		t.Errorf("imported %d plants, want 2 (bad rows skipped)", len(result.Plants))
	}
	if len(result.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(result.Errors), result.Errors)
	}
	for _, e := range result.Errors {
		if !strings.HasPrefix(e, "Line ") {
			t.Errorf("error should name the line: %q", e)
		}
	}
}

func TestImportCSV_UnknownNeedsWarnAndDefault(t *testing.T) {
	path := writeTempCSV(t,
		"Name,Width,Water\n"+
			"Tomato,0.5,sometimes\n")

	result := ImportCSV(path)
	if len(result.Plants) != 1 {
		t.Fatalf("imported %d plants, want 1", len(result.Plants))
	}
	if result.Plants[0].Water != model.WaterModerate {
		t.Errorf("unknown water need should default to moderate, got %v", result.Plants[0].Water)
	}
	warned := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "water need") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected a water-need warning, got %v", result.Warnings)
	}
}

func TestImportCSV_DuplicateNamesSkipped(t *testing.T) {
	path := writeTempCSV(t,
		"Name,Width\n"+
			"Tomato,0.5\n"+
			"Tomato,0.6\n")

	result := ImportCSV(path)
	if len(result.Plants) != 1 {
		t.Errorf("imported %d plants, want 1 (duplicate skipped)", len(result.Plants))
	}
}

func TestImportCSV_SemicolonDelimited(t *testing.T) {
	path := writeTempCSV(t,
		"Name;Botanical;Width;Spacing\n"+
			"Tomato;Solanum lycopersicum;0.5;0.6\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Plants) != 1 || result.Plants[0].Name != "Tomato" {
		t.Errorf("plants = %+v", result.Plants)
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")
	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected an error for an empty file")
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}

func TestImportCSVFromReader(t *testing.T) {
	data := "Name,Width\nSquash,0.9\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')
	if len(result.Plants) != 1 || result.Plants[0].ID != "squash" {
		t.Errorf("plants = %+v", result.Plants)
	}
}

// ─── ImportExcel Tests ─────────────────────────────────────

func writeTempExcel(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cellName, val); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportExcel(t *testing.T) {
	path := writeTempExcel(t, [][]any{
		{"Name", "Botanical", "Width", "Spacing", "Water"},
		{"Tomato", "Solanum lycopersicum", 0.5, 0.6, "high"},
		{"Carrot", "Daucus carota", 0.1, 0.1, "low"},
	})

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Plants) != 2 {
		t.Fatalf("imported %d plants, want 2", len(result.Plants))
	}
	if result.Plants[1].Water != model.WaterLow {
		t.Errorf("carrot water = %v, want low", result.Plants[1].Water)
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}
