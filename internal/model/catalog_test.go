package model

import (
	"strings"
	"testing"
)

func testCatalog() *Catalog {
	return &Catalog{
		Plants: []PlantDefinition{
			{
				ID: "tomato", Name: "Tomato", Botanical: "Solanum lycopersicum",
				Width: 0.5, Spacing: 0.6, Water: WaterHigh, Sun: SunFull,
				Tags:       []string{"vegetable", "summer"},
				Companions: []string{"basil"},
				Avoid:      []string{"potato"},
			},
			{
				ID: "basil", Name: "Basil", Botanical: "Ocimum basilicum",
				Width: 0.25, Spacing: 0.3, Water: WaterModerate, Sun: SunFull,
				Tags:       []string{"herb", "summer"},
				Companions: []string{"tomato"},
			},
			{
				ID: "potato", Name: "Potato", Botanical: "Solanum tuberosum",
				Width: 0.35, Spacing: 0.4, Water: WaterModerate, Sun: SunFull,
				Tags:  []string{"vegetable", "root"},
				Avoid: []string{"tomato"},
			},
			{
				ID: "carrot", Name: "Carrot", Botanical: "Daucus carota",
				Width: 0.1, Spacing: 0.1, Water: WaterLow, Sun: SunFull,
				Tags:       []string{"vegetable", "root"},
				Companions: []string{"tomato"}, // one-sided on purpose
			},
		},
		Structures: []StructureDefinition{
			{ID: "raised-bed", Name: "Raised Bed", Width: 2.0, Length: 1.0},
		},
	}
}

func TestFindPlant(t *testing.T) {
	c := testCatalog()

	if p := c.FindPlant("tomato"); p == nil || p.Name != "Tomato" {
		t.Errorf("FindPlant(tomato) = %v, want Tomato", p)
	}
	if p := c.FindPlant("nonexistent"); p != nil {
		t.Errorf("FindPlant(nonexistent) = %v, want nil", p)
	}
	if s := c.FindStructure("raised-bed"); s == nil || s.Name != "Raised Bed" {
		t.Errorf("FindStructure(raised-bed) = %v, want Raised Bed", s)
	}
	if p := c.FindPlantByName("Basil"); p == nil || p.ID != "basil" {
		t.Errorf("FindPlantByName(Basil) = %v, want basil", p)
	}
}

func TestSearchByTerm(t *testing.T) {
	c := testCatalog()

	// Case-insensitive substring on display name
	matches := c.Search("TOM", nil)
	if len(matches) != 1 || matches[0].ID != "tomato" {
		t.Errorf("Search(TOM) = %v, want [tomato]", matches)
	}

	// Botanical name also matches
	matches = c.Search("solanum", nil)
	if len(matches) != 2 {
		t.Errorf("Search(solanum) matched %d plants, want 2", len(matches))
	}

	// Empty term passes everything
	if matches = c.Search("", nil); len(matches) != 4 {
		t.Errorf("empty term matched %d plants, want 4", len(matches))
	}
}

func TestSearchByTags(t *testing.T) {
	c := testCatalog()

	// Tags OR together
	matches := c.Search("", []string{"herb", "root"})
	if len(matches) != 3 {
		t.Errorf("Search(tags=herb|root) matched %d, want 3", len(matches))
	}

	// Term ANDs with the tag filter
	matches = c.Search("potato", []string{"root"})
	if len(matches) != 1 || matches[0].ID != "potato" {
		t.Errorf("Search(potato, root) = %v, want [potato]", matches)
	}

	// Tag match is case-insensitive
	matches = c.Search("", []string{"HERB"})
	if len(matches) != 1 || matches[0].ID != "basil" {
		t.Errorf("Search(tags=HERB) = %v, want [basil]", matches)
	}
}

func TestAuditRelations(t *testing.T) {
	c := testCatalog()
	warnings := c.AuditRelations()

	// Carrot lists tomato as a companion, but tomato does not list carrot.
	// Tomato avoids potato and potato avoids tomato, so that pair is clean.
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "Carrot") && strings.Contains(w, "not vice versa") {
			found = true
		}
		if strings.Contains(w, "Tomato avoids Potato") {
			t.Errorf("mutual avoid pair should not warn: %q", w)
		}
	}
	if !found {
		t.Errorf("expected a one-sided companion warning for Carrot, got %v", warnings)
	}
}

func TestAuditRelationsUnknownID(t *testing.T) {
	c := &Catalog{
		Plants: []PlantDefinition{
			{ID: "bean", Name: "Bean", Companions: []string{"unicorn"}},
		},
	}
	warnings := c.AuditRelations()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "unknown companion") {
		t.Errorf("expected one unknown-companion warning, got %v", warnings)
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog failed: %v", err)
	}
	if len(cat.Plants) == 0 {
		t.Fatal("default catalog has no plants")
	}
	if len(cat.Structures) == 0 {
		t.Fatal("default catalog has no structures")
	}

	// The companion data must reference real IDs both ways for the core
	// tomato/basil pairing.
	tomato := cat.FindPlant("tomato")
	basil := cat.FindPlant("basil")
	if tomato == nil || basil == nil {
		t.Fatal("default catalog missing tomato or basil")
	}
	if !tomato.IsCompanion("basil") || !basil.IsCompanion("tomato") {
		t.Error("tomato and basil should be mutual companions")
	}
	if !tomato.Avoids("potato") {
		t.Error("tomato should avoid potato")
	}

	// Every definition needs the fields placement and rendering depend on.
	for _, p := range cat.Plants {
		if p.ID == "" || p.Name == "" {
			t.Errorf("plant %+v missing id or name", p)
		}
		if p.Width <= 0 {
			t.Errorf("plant %s has non-positive width", p.ID)
		}
	}
}

func TestHasTagCaseInsensitive(t *testing.T) {
	p := PlantDefinition{Tags: []string{"Herb", "summer"}}
	if !p.HasTag("herb") || !p.HasTag("SUMMER") {
		t.Error("HasTag should ignore case")
	}
	if p.HasTag("winter") {
		t.Error("HasTag should not match missing tags")
	}
}
