package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GardenPlot/internal/model"
)

func TestSaveLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config := model.DefaultAppConfig()
	config.DefaultWidth = 8.0
	config.RecentPlans = []string{"/tmp/a-plan.json"}

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.DefaultWidth != 8.0 {
		t.Errorf("DefaultWidth = %v, want 8.0", loaded.DefaultWidth)
	}
	if len(loaded.RecentPlans) != 1 || loaded.RecentPlans[0] != "/tmp/a-plan.json" {
		t.Errorf("RecentPlans = %v", loaded.RecentPlans)
	}
}

func TestLoadAppConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("missing config should not error, got %v", err)
	}
	defaults := model.DefaultAppConfig()
	if loaded.DefaultWidth != defaults.DefaultWidth || loaded.DefaultGridSize != defaults.DefaultGridSize {
		t.Errorf("loaded = %+v, want defaults %+v", loaded, defaults)
	}
}

func TestLoadAppConfigNeverNilRecents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_width": 5}`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.RecentPlans == nil {
		t.Error("RecentPlans must never be nil after load")
	}
}

func TestLoadCatalogMissingFileCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(cat.Plants) == 0 {
		t.Fatal("default catalog should have plants")
	}

	// The default must have been written back for next launch.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("catalog file was not created: %v", err)
	}

	// A second load reads the saved file, not the embedded defaults.
	again, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Plants) != len(cat.Plants) {
		t.Errorf("reloaded catalog has %d plants, want %d", len(again.Plants), len(cat.Plants))
	}
}

func TestImportCatalogMergesWithoutDuplicates(t *testing.T) {
	existing := model.Catalog{
		Plants: []model.PlantDefinition{
			{ID: "tomato", Name: "Tomato", Width: 0.5},
		},
	}
	imported := model.Catalog{
		Plants: []model.PlantDefinition{
			{ID: "tomato", Name: "Different Tomato", Width: 0.9}, // duplicate id, skipped
			{ID: "basil", Name: "Basil", Width: 0.25},
		},
		Structures: []model.StructureDefinition{
			{ID: "arch", Name: "Arch", Width: 1.2, Length: 0.4},
		},
	}

	path := filepath.Join(t.TempDir(), "import.json")
	if err := SaveCatalog(path, imported); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportCatalog(path, existing)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}

	if len(merged.Plants) != 2 {
		t.Errorf("merged has %d plants, want 2", len(merged.Plants))
	}
	// The existing definition wins over the imported duplicate
	if merged.Plants[0].Name != "Tomato" || merged.Plants[0].Width != 0.5 {
		t.Errorf("existing tomato was overwritten: %+v", merged.Plants[0])
	}
	if len(merged.Structures) != 1 {
		t.Errorf("merged has %d structures, want 1", len(merged.Structures))
	}
}

func TestMergePlantDefinitions(t *testing.T) {
	cat := model.Catalog{
		Plants: []model.PlantDefinition{{ID: "tomato", Name: "Tomato"}},
	}

	added := MergePlantDefinitions(&cat, []model.PlantDefinition{
		{ID: "tomato", Name: "Dup"},
		{ID: "basil", Name: "Basil"},
		{ID: "carrot", Name: "Carrot"},
	})

	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if len(cat.Plants) != 3 {
		t.Errorf("catalog has %d plants, want 3", len(cat.Plants))
	}
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "gardenplot-backup.json")

	config := model.DefaultAppConfig()
	config.Theme = "dark"
	catalog := model.Catalog{
		Plants: []model.PlantDefinition{{ID: "pea", Name: "Pea", Width: 0.15}},
	}

	if err := ExportAllData(path, config, catalog); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version == "" || backup.CreatedAt == "" {
		t.Errorf("backup metadata missing: %+v", backup)
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", backup.Config.Theme)
	}
	if len(backup.Catalog.Plants) != 1 || backup.Catalog.Plants[0].ID != "pea" {
		t.Errorf("catalog not restored: %+v", backup.Catalog)
	}
	if backup.Config.RecentPlans == nil {
		t.Error("RecentPlans must never be nil after import")
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for a backup without a version field")
	}
}
