package model

import "fmt"

// CompatibilityEntry records one pairwise finding between two placed plants.
// Plant1 is the plant whose companion/avoid list produced the entry; the
// relation is directional as declared in the catalog.
type CompatibilityEntry struct {
	Plant1   string `json:"plant1"` // display name of the declaring plant
	Plant2   string `json:"plant2"` // display name of the neighbor
	Plant1ID string `json:"plant1Id"`
	Plant2ID string `json:"plant2Id"`
	Reason   string `json:"reason"`
}

// CompatibilityReport lists the conflicts and benefits among currently
// placed plants. It is recomputed from scratch on every analysis and
// never persisted.
type CompatibilityReport struct {
	Conflicts []CompatibilityEntry `json:"conflicts"`
	Benefits  []CompatibilityEntry `json:"benefits"`
}

// cell keys the per-cell placement buckets.
type cell struct {
	x, y int
}

// Analyze scans every placed plant's eight grid neighbors against the
// catalog companion and avoid lists. A neighbor on the subject's avoid
// list yields a conflict; one on its companion list yields a benefit.
// Checks are directional: A avoiding B does not imply B avoids A, and
// both directions are examined independently as each plant takes its
// turn as subject. Plants whose type is missing from the catalog are
// skipped rather than failing the analysis.
func Analyze(plants []PlantPlacement, catalog *Catalog) CompatibilityReport {
	report := CompatibilityReport{}

	buckets := make(map[cell][]PlantPlacement, len(plants))
	for _, p := range plants {
		key := cell{p.X, p.Y}
		buckets[key] = append(buckets[key], p)
	}

	for _, subject := range plants {
		def := catalog.FindPlant(subject.TypeID)
		if def == nil {
			continue
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				for _, neighbor := range buckets[cell{subject.X + dx, subject.Y + dy}] {
					if neighbor.ID == subject.ID {
						continue
					}
					neighborName := neighbor.TypeID
					if ndef := catalog.FindPlant(neighbor.TypeID); ndef != nil {
						neighborName = ndef.Name
					}

					if def.Avoids(neighbor.TypeID) {
						report.Conflicts = append(report.Conflicts, CompatibilityEntry{
							Plant1:   def.Name,
							Plant2:   neighborName,
							Plant1ID: subject.ID,
							Plant2ID: neighbor.ID,
							Reason:   fmt.Sprintf("%s should not grow next to %s", def.Name, neighborName),
						})
					}
					if def.IsCompanion(neighbor.TypeID) {
						report.Benefits = append(report.Benefits, CompatibilityEntry{
							Plant1:   def.Name,
							Plant2:   neighborName,
							Plant1ID: subject.ID,
							Plant2ID: neighbor.ID,
							Reason:   fmt.Sprintf("%s grows well beside %s", def.Name, neighborName),
						})
					}
				}
			}
		}
	}

	return report
}
