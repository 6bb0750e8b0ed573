package model

import (
	"fmt"
	"strings"
)

// Catalog is the registry of plant and structure definitions. It is
// populated once at startup (from the embedded defaults or a saved catalog
// file) and treated as read-only thereafter.
type Catalog struct {
	Plants     []PlantDefinition     `json:"plants" yaml:"plants"`
	Structures []StructureDefinition `json:"structures" yaml:"structures"`
}

// FindPlant returns a pointer to the plant definition with the given ID, or nil.
func (c *Catalog) FindPlant(id string) *PlantDefinition {
	for i := range c.Plants {
		if c.Plants[i].ID == id {
			return &c.Plants[i]
		}
	}
	return nil
}

// FindStructure returns a pointer to the structure definition with the given ID, or nil.
func (c *Catalog) FindStructure(id string) *StructureDefinition {
	for i := range c.Structures {
		if c.Structures[i].ID == id {
			return &c.Structures[i]
		}
	}
	return nil
}

// FindPlantByName returns a pointer to the first plant with the given display name, or nil.
func (c *Catalog) FindPlantByName(name string) *PlantDefinition {
	for i := range c.Plants {
		if c.Plants[i].Name == name {
			return &c.Plants[i]
		}
	}
	return nil
}

// PlantNames returns the plant display names for UI dropdowns.
func (c *Catalog) PlantNames() []string {
	names := make([]string, len(c.Plants))
	for i, p := range c.Plants {
		names[i] = p.Name
	}
	return names
}

// StructureNames returns the structure display names for UI dropdowns.
func (c *Catalog) StructureNames() []string {
	names := make([]string, len(c.Structures))
	for i, s := range c.Structures {
		names[i] = s.Name
	}
	return names
}

// Search returns plant definitions matching the term and tag filter.
// The term matches case-insensitively as a substring of the display or
// botanical name. Tags are OR'd together (a plant matches when it carries
// any requested tag) and the tag filter is AND'd with the term. An empty
// term or empty tag list passes everything for that criterion.
func (c *Catalog) Search(term string, tags []string) []PlantDefinition {
	term = strings.ToLower(strings.TrimSpace(term))

	var matches []PlantDefinition
	for _, p := range c.Plants {
		if term != "" {
			name := strings.ToLower(p.Name)
			botanical := strings.ToLower(p.Botanical)
			if !strings.Contains(name, term) && !strings.Contains(botanical, term) {
				continue
			}
		}
		if len(tags) > 0 {
			anyTag := false
			for _, tag := range tags {
				if p.HasTag(tag) {
					anyTag = true
					break
				}
			}
			if !anyTag {
				continue
			}
		}
		matches = append(matches, p)
	}
	return matches
}

// AuditRelations checks the companion and avoid lists for data-quality
// issues: references to unknown plant IDs and one-sided declarations
// (A lists B but B does not list A). Relations stay directional as
// declared; the audit only reports, it never symmetrizes.
func (c *Catalog) AuditRelations() []string {
	var warnings []string

	for _, p := range c.Plants {
		for _, id := range p.Companions {
			other := c.FindPlant(id)
			if other == nil {
				warnings = append(warnings, fmt.Sprintf("%s lists unknown companion %q", p.Name, id))
				continue
			}
			if !other.IsCompanion(p.ID) {
				warnings = append(warnings, fmt.Sprintf("%s lists %s as companion, but not vice versa", p.Name, other.Name))
			}
		}
		for _, id := range p.Avoid {
			other := c.FindPlant(id)
			if other == nil {
				warnings = append(warnings, fmt.Sprintf("%s lists unknown avoid plant %q", p.Name, id))
				continue
			}
			if !other.Avoids(p.ID) {
				warnings = append(warnings, fmt.Sprintf("%s avoids %s, but not vice versa", p.Name, other.Name))
			}
		}
	}
	return warnings
}
