package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// DefaultCatalogPath returns the default file path for the catalog file.
// This is located at ~/.gardenplot/catalog.json.
func DefaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gardenplot", "catalog.json"), nil
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the built-in catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat, catErr := model.DefaultCatalog()
			if catErr != nil {
				return model.Catalog{}, catErr
			}
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with the built-in entries.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path, err := DefaultCatalogPath()
	if err != nil {
		return model.MustDefaultCatalog(), "", err
	}
	cat, err := LoadCatalog(path)
	return cat, path, err
}

// ExportCatalog exports the catalog to a user-specified JSON file.
func ExportCatalog(path string, cat model.Catalog) error {
	return SaveCatalog(path, cat)
}

// ImportCatalog imports a catalog from a user-specified JSON file,
// merging it with the existing catalog. Duplicate IDs are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	// Build sets of existing IDs for deduplication
	plantIDs := make(map[string]bool, len(existing.Plants))
	for _, p := range existing.Plants {
		plantIDs[p.ID] = true
	}
	structureIDs := make(map[string]bool, len(existing.Structures))
	for _, s := range existing.Structures {
		structureIDs[s.ID] = true
	}

	// Merge plants
	for _, p := range imported.Plants {
		if !plantIDs[p.ID] {
			existing.Plants = append(existing.Plants, p)
			plantIDs[p.ID] = true
		}
	}

	// Merge structures
	for _, s := range imported.Structures {
		if !structureIDs[s.ID] {
			existing.Structures = append(existing.Structures, s)
			structureIDs[s.ID] = true
		}
	}

	return existing, nil
}

// MergePlantDefinitions adds imported plant definitions to the catalog,
// skipping duplicates by ID. Returns the number of plants actually added.
func MergePlantDefinitions(cat *model.Catalog, plants []model.PlantDefinition) int {
	existing := make(map[string]bool, len(cat.Plants))
	for _, p := range cat.Plants {
		existing[p.ID] = true
	}
	added := 0
	for _, p := range plants {
		if !existing[p.ID] {
			cat.Plants = append(cat.Plants, p)
			existing[p.ID] = true
			added++
		}
	}
	return added
}

// MergeStructureDefinitions adds imported structure definitions to the
// catalog, skipping duplicates by ID. Returns the number actually added.
func MergeStructureDefinitions(cat *model.Catalog, structures []model.StructureDefinition) int {
	existing := make(map[string]bool, len(cat.Structures))
	for _, s := range cat.Structures {
		existing[s.ID] = true
	}
	added := 0
	for _, s := range structures {
		if !existing[s.ID] {
			cat.Structures = append(cat.Structures, s)
			existing[s.ID] = true
			added++
		}
	}
	return added
}
