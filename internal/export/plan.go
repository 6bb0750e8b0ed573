// Package export provides functionality for exporting garden plans to
// various file formats.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// PlanDocumentVersion identifies the plan document schema. Importers
// reject documents without a version field.
const PlanDocumentVersion = "1.0.0"

// PlantEntry is a plant placement enriched with its resolved definition.
// The definition is omitted when the catalog no longer knows the type.
type PlantEntry struct {
	model.PlantPlacement
	Definition *model.PlantDefinition `json:"definition,omitempty"`
}

// StructureEntry is a structure placement enriched with its definition.
// Height is copied out of the definition so it survives even when a later
// catalog no longer knows the type.
type StructureEntry struct {
	model.StructurePlacement
	Height     float64                    `json:"height"`
	Definition *model.StructureDefinition `json:"definition,omitempty"`
}

// PlanDocument is the portable, self-contained form of a garden plan:
// settings, all placements with resolved catalog definitions, and a
// freshly computed compatibility report.
type PlanDocument struct {
	Version   string  `json:"version"`
	CreatedAt string  `json:"created_at"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`
	Length    float64 `json:"length"`
	GridSize  float64 `json:"gridSize"`

	Plants     []PlantEntry        `json:"plants"`
	Structures []StructureEntry    `json:"structures"`
	Paths      []model.PathSegment `json:"paths"`

	Compatibility model.CompatibilityReport `json:"compatibility"`
	Warnings      []string                  `json:"warnings,omitempty"`
}

// BuildPlanDocument assembles the export document from the current store
// state. The compatibility report and overlap warnings are recomputed so
// the document always reflects the placements it carries.
func BuildPlanDocument(settings model.GardenSettings, plants []model.PlantPlacement, structures []model.StructurePlacement, paths []model.PathSegment, catalog *model.Catalog) PlanDocument {
	doc := PlanDocument{
		Version:   PlanDocumentVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Name:      settings.Name,
		Width:     settings.Width,
		Length:    settings.Length,
		GridSize:  settings.GridSize,
		Paths:     paths,
	}

	for _, p := range plants {
		doc.Plants = append(doc.Plants, PlantEntry{
			PlantPlacement: p,
			Definition:     catalog.FindPlant(p.TypeID),
		})
	}
	for _, s := range structures {
		entry := StructureEntry{
			StructurePlacement: s,
			Definition:         catalog.FindStructure(s.TypeID),
		}
		if entry.Definition != nil {
			entry.Height = entry.Definition.Height
		}
		doc.Structures = append(doc.Structures, entry)
	}

	doc.Compatibility = model.Analyze(plants, catalog)
	doc.Warnings = model.FormatOverlapWarnings(
		model.OverlapWarnings(plants, structures, paths, catalog))

	return doc
}

// ExportPlan writes the plan document as indented JSON, creating parent
// directories as needed.
func ExportPlan(path string, doc PlanDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan document: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// SuggestedFilename derives the export filename from the garden name:
// lower-cased, whitespace collapsed to hyphens, with a "-plan.json"
// suffix. An empty name falls back to "garden-plan.json".
func SuggestedFilename(name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	if slug == "" {
		slug = "garden"
	}
	return slug + "-plan.json"
}
