package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/piwi3910/GardenPlot/internal/export"
	"github.com/piwi3910/GardenPlot/internal/model"
)

// PlanImportResult holds a re-validated plan loaded from disk. Placements
// that no longer fit the plan's own grid or catalog are dropped with a
// warning rather than failing the whole import.
type PlanImportResult struct {
	Settings   model.GardenSettings
	Plants     []model.PlantPlacement
	Structures []model.StructurePlacement
	Paths      []model.PathSegment
	Warnings   []string
}

// ImportPlan reads a plan document previously written by export.ExportPlan
// and validates it from scratch: settings must pass validation, every
// placement must be in bounds, and no two plants may share a cell. The
// exported document embeds definitions so they survive catalog changes,
// but placements referencing plants missing from the given catalog still
// import when the document carries the definition.
func ImportPlan(path string, catalog *model.Catalog) (PlanImportResult, error) {
	result := PlanImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("cannot open plan file: %w", err)
	}

	var doc export.PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return result, fmt.Errorf("cannot parse plan file: %w", err)
	}

	if doc.Version == "" {
		return result, fmt.Errorf("plan file has no version field")
	}
	if major(doc.Version) != major(export.PlanDocumentVersion) {
		return result, fmt.Errorf("unsupported plan version %s (expected %s.x)",
			doc.Version, major(export.PlanDocumentVersion))
	}

	settings := model.GardenSettings{
		Name:     doc.Name,
		Width:    doc.Width,
		Length:   doc.Length,
		GridSize: doc.GridSize,
	}
	if err := settings.Validate(); err != nil {
		return result, fmt.Errorf("invalid garden settings in plan: %w", err)
	}
	result.Settings = settings

	grid := model.NewGrid(settings)

	occupied := make(map[[2]int]bool)
	for _, p := range doc.Plants {
		if err := grid.CheckBounds(p.X, p.Y); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Dropped plant %q at (%d,%d): outside grid", p.TypeID, p.X, p.Y))
			continue
		}
		if occupied[[2]int{p.X, p.Y}] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Dropped plant %q at (%d,%d): cell already occupied", p.TypeID, p.X, p.Y))
			continue
		}
		if catalog.FindPlant(p.TypeID) == nil && p.Definition == nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Dropped plant %q at (%d,%d): unknown plant type", p.TypeID, p.X, p.Y))
			continue
		}
		occupied[[2]int{p.X, p.Y}] = true
		result.Plants = append(result.Plants, p.PlantPlacement)
	}

	for _, st := range doc.Structures {
		if err := grid.CheckBounds(st.X, st.Y); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Dropped structure %q at (%d,%d): outside grid", st.TypeID, st.X, st.Y))
			continue
		}
		result.Structures = append(result.Structures, st.StructurePlacement)
	}

	for _, seg := range doc.Paths {
		if err := grid.CheckBounds(seg.X, seg.Y); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Dropped path at (%d,%d): outside grid", seg.X, seg.Y))
			continue
		}
		result.Paths = append(result.Paths, seg)
	}

	return result, nil
}

// major extracts the major component of a semantic version string.
func major(version string) string {
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}
