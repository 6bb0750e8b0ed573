package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/GardenPlot/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	plants := []model.PlantPlacement{
		{ID: "p1", TypeID: "tomato", X: 0, Y: 0, Size: 1, PlantedDate: time.Now()},
		{ID: "p2", TypeID: "basil", X: 1, Y: 0, Size: 1, PlantedDate: time.Now()},
	}

	err := ExportLabels(path, plants, exportCatalog())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("labels file is empty")
	}
}

func TestExportLabels_NoPlants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "none.pdf")

	err := ExportLabels(path, nil, exportCatalog())
	if err == nil {
		t.Fatal("expected error for a plan with no plants, got nil")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written when there is nothing to label")
	}
}

func TestExportLabels_UnknownTypeFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fallback.pdf")

	// The placement survives even without a catalog entry; the label falls
	// back to the type id.
	plants := []model.PlantPlacement{
		{ID: "p1", TypeID: "mystery-plant", X: 2, Y: 2, Size: 1, PlantedDate: time.Now()},
	}

	err := ExportLabels(path, plants, exportCatalog())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("labels file is empty")
	}
}

func TestExportLabels_SecondPageAfterThirty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "multipage.pdf")

	// 35 plants overflow one 3x10 label sheet onto a second page.
	var plants []model.PlantPlacement
	for i := 0; i < 35; i++ {
		plants = append(plants, model.PlantPlacement{
			ID: string(rune('A' + i)), TypeID: "tomato",
			X: i % 12, Y: i / 12, Size: 1, PlantedDate: time.Now(),
		})
	}

	err := ExportLabels(path, plants, exportCatalog())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("labels file is empty")
	}
}
