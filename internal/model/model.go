package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WaterNeed describes how much watering a plant requires.
type WaterNeed string

const (
	WaterLow      WaterNeed = "low"
	WaterModerate WaterNeed = "moderate"
	WaterHigh     WaterNeed = "high"
)

// SunNeed describes the light exposure a plant requires.
type SunNeed string

const (
	SunFull    SunNeed = "full"
	SunPartial SunNeed = "partial"
	SunShade   SunNeed = "shade"
)

// GardenSettings holds the plot dimensions and grid configuration.
// Width and Length are in metres; GridSize is the edge length of one cell.
type GardenSettings struct {
	Name     string  `json:"name"`
	Width    float64 `json:"width"`
	Length   float64 `json:"length"`
	GridSize float64 `json:"gridSize"`
}

// Validate checks the settings invariants: all dimensions positive and the
// cell size no larger than the smaller plot dimension.
func (s GardenSettings) Validate() error {
	if s.Width <= 0 || s.Length <= 0 {
		return &SettingsError{Field: "dimensions", Reason: "width and length must be positive"}
	}
	if s.GridSize <= 0 {
		return &SettingsError{Field: "gridSize", Reason: "grid size must be positive"}
	}
	if s.GridSize > s.Width || s.GridSize > s.Length {
		return &SettingsError{Field: "gridSize", Reason: "grid size cannot exceed the plot dimensions"}
	}
	return nil
}

// DefaultSettings returns the settings used for a fresh plan.
func DefaultSettings() GardenSettings {
	return GardenSettings{
		Name:     "My Garden",
		Width:    6.0,
		Length:   4.0,
		GridSize: 0.5,
	}
}

// PlantDefinition describes one plant type in the catalog.
// Definitions are read-only once the catalog is loaded.
type PlantDefinition struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Botanical     string    `json:"botanical" yaml:"botanical"`
	Category      string    `json:"category" yaml:"category"`
	Spacing       float64   `json:"spacing" yaml:"spacing"` // metres between plants
	Height        float64   `json:"height" yaml:"height"`   // mature height in metres
	Width         float64   `json:"width" yaml:"width"`     // footprint in metres
	GrowthMonths  []int     `json:"growthMonths" yaml:"growthMonths"`
	HarvestMonths []int     `json:"harvestMonths" yaml:"harvestMonths"`
	Water         WaterNeed `json:"water" yaml:"water"`
	Sun           SunNeed   `json:"sun" yaml:"sun"`
	Tags          []string  `json:"tags" yaml:"tags"`
	Companions    []string  `json:"companionPlants" yaml:"companions"`
	Avoid         []string  `json:"avoidPlants" yaml:"avoid"`
	Color         string    `json:"color" yaml:"color"` // display color as #RRGGBB
	Icon          string    `json:"icon" yaml:"icon"`
}

// HasTag reports whether the definition carries the given tag (case-insensitive).
func (p PlantDefinition) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// IsCompanion reports whether this plant declares id as a companion.
func (p PlantDefinition) IsCompanion(id string) bool {
	for _, c := range p.Companions {
		if c == id {
			return true
		}
	}
	return false
}

// Avoids reports whether this plant declares id on its avoid list.
func (p PlantDefinition) Avoids(id string) bool {
	for _, a := range p.Avoid {
		if a == id {
			return true
		}
	}
	return false
}

// StructureDefinition describes a placeable garden structure type.
type StructureDefinition struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Width  float64 `json:"width" yaml:"width"`   // metres
	Length float64 `json:"length" yaml:"length"` // metres
	Height float64 `json:"height" yaml:"height"` // metres
	Color  string  `json:"color" yaml:"color"`
}

// PlantPlacement is one plant positioned on the grid.
type PlantPlacement struct {
	ID          string    `json:"id"`
	TypeID      string    `json:"typeId"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Size        int       `json:"size"` // footprint in grid cells per side
	PlantedDate time.Time `json:"plantedDate"`
}

// StructurePlacement is one structure positioned on the grid.
type StructurePlacement struct {
	ID     string `json:"id"`
	TypeID string `json:"typeId"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`  // grid cells
	Length int    `json:"length"` // grid cells
	Color  string `json:"color"`
}

// PathSegment is a rectangular walkway on the grid.
type PathSegment struct {
	ID       string `json:"id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`  // grid cells
	Length   int    `json:"length"` // grid cells
	Material string `json:"material"`
	Color    string `json:"color"`
}

// newID generates a short unique identifier for placements.
func newID() string {
	return uuid.New().String()[:8]
}
