package model

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// PlacementStore owns the live placement collections for one garden plan.
// Every mutation validates first, snapshots the pre-mutation state for
// undo, and only then applies the change, so a failed call never leaves
// the store partially mutated. The store is not safe for concurrent use;
// it belongs to the UI event loop.
type PlacementStore struct {
	settings GardenSettings
	grid     Grid
	catalog  *Catalog

	plants     []PlantPlacement
	structures []StructurePlacement
	paths      []PathSegment

	history *History
	log     *zap.Logger
}

// NewPlacementStore creates a store for the given settings and catalog.
// A nil logger is replaced with a no-op logger.
func NewPlacementStore(settings GardenSettings, catalog *Catalog, log *zap.Logger) (*PlacementStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PlacementStore{
		settings: settings,
		grid:     NewGrid(settings),
		catalog:  catalog,
		history:  NewHistory(),
		log:      log,
	}, nil
}

// Settings returns the current garden settings.
func (s *PlacementStore) Settings() GardenSettings {
	return s.settings
}

// Grid returns the cell grid computed from the current settings.
func (s *PlacementStore) Grid() Grid {
	return s.grid
}

// Catalog returns the catalog the store resolves type IDs against.
func (s *PlacementStore) Catalog() *Catalog {
	return s.catalog
}

// Plants returns a copy of the plant placements. Callers may hold the
// slice across renders; it never aliases the live state.
func (s *PlacementStore) Plants() []PlantPlacement {
	return copyPlants(s.plants)
}

// Structures returns a copy of the structure placements.
func (s *PlacementStore) Structures() []StructurePlacement {
	return copyStructures(s.structures)
}

// Paths returns a copy of the path segments.
func (s *PlacementStore) Paths() []PathSegment {
	return copyPaths(s.paths)
}

// UpdateSettings replaces the garden settings and recomputes the grid.
// Existing placements are kept as-is, even those that fall outside a
// newly shrunk grid; the overlap and bounds state surfaces on the next
// analysis rather than destroying user work.
func (s *PlacementStore) UpdateSettings(settings GardenSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	s.grid = NewGrid(settings)
	return nil
}

// PlantAt returns the plant placement occupying the given cell, or nil.
// Occupancy is keyed on the placement's origin cell.
func (s *PlacementStore) PlantAt(x, y int) *PlantPlacement {
	for i := range s.plants {
		if s.plants[i].X == x && s.plants[i].Y == y {
			return &s.plants[i]
		}
	}
	return nil
}

// StructureAt returns the structure placement whose footprint covers the
// given cell, or nil.
func (s *PlacementStore) StructureAt(x, y int) *StructurePlacement {
	for i := range s.structures {
		st := &s.structures[i]
		if x >= st.X && x < st.X+st.Width && y >= st.Y && y < st.Y+st.Length {
			return st
		}
	}
	return nil
}

// PathAt returns the path segment covering the given cell, or nil.
func (s *PlacementStore) PathAt(x, y int) *PathSegment {
	for i := range s.paths {
		p := &s.paths[i]
		if x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Length {
			return p
		}
	}
	return nil
}

// PlacePlant places a plant of the given catalog type at a grid cell.
// Fails with ErrNotFound for an unknown type, ErrOutOfBounds for a cell
// outside the grid, and ErrOccupied when another plant already holds the
// cell. The footprint is derived from the definition width and the cell
// size, and the planted date is set to now.
func (s *PlacementStore) PlacePlant(typeID string, x, y int) (PlantPlacement, error) {
	def := s.catalog.FindPlant(typeID)
	if def == nil {
		return PlantPlacement{}, fmt.Errorf("plant type %q %w in catalog", typeID, ErrNotFound)
	}
	if err := s.grid.CheckBounds(x, y); err != nil {
		return PlantPlacement{}, err
	}
	if occ := s.PlantAt(x, y); occ != nil {
		return PlantPlacement{}, fmt.Errorf("%w by plant %s at (%d,%d)", ErrOccupied, occ.ID, x, y)
	}

	s.snapshot("Place " + def.Name)
	placement := PlantPlacement{
		ID:          newID(),
		TypeID:      typeID,
		X:           x,
		Y:           y,
		Size:        s.grid.FootprintCells(def.Width),
		PlantedDate: time.Now(),
	}
	s.plants = append(s.plants, placement)
	return placement, nil
}

// RemovePlant removes a plant placement by ID. An unknown ID is a warned
// no-op, matching the store's remove contract.
func (s *PlacementStore) RemovePlant(id string) bool {
	for i := range s.plants {
		if s.plants[i].ID == id {
			s.snapshot("Remove Plant")
			s.plants = append(s.plants[:i], s.plants[i+1:]...)
			return true
		}
	}
	s.log.Warn("remove plant: id not found", zap.String("id", id))
	return false
}

// AddStructure places a structure of the given catalog type with its
// origin at a grid cell. Structures do not participate in plant occupancy
// checks; overlaps are reported by OverlapWarnings instead of rejected.
func (s *PlacementStore) AddStructure(typeID string, x, y int) (StructurePlacement, error) {
	def := s.catalog.FindStructure(typeID)
	if def == nil {
		return StructurePlacement{}, fmt.Errorf("structure type %q %w in catalog", typeID, ErrNotFound)
	}
	if err := s.grid.CheckBounds(x, y); err != nil {
		return StructurePlacement{}, err
	}

	s.snapshot("Add " + def.Name)
	placement := StructurePlacement{
		ID:     newID(),
		TypeID: typeID,
		X:      x,
		Y:      y,
		Width:  s.grid.FootprintCells(def.Width),
		Length: s.grid.FootprintCells(def.Length),
		Color:  def.Color,
	}
	s.structures = append(s.structures, placement)
	return placement, nil
}

// RemoveStructure removes a structure placement by ID. Unknown IDs are
// warned no-ops.
func (s *PlacementStore) RemoveStructure(id string) bool {
	for i := range s.structures {
		if s.structures[i].ID == id {
			s.snapshot("Remove Structure")
			s.structures = append(s.structures[:i], s.structures[i+1:]...)
			return true
		}
	}
	s.log.Warn("remove structure: id not found", zap.String("id", id))
	return false
}

// AddPath places a rectangular path segment with its origin at a grid cell.
func (s *PlacementStore) AddPath(x, y, width, length int, material string) (PathSegment, error) {
	if width < 1 || length < 1 {
		return PathSegment{}, fmt.Errorf("path dimensions %dx%d must be at least one cell", width, length)
	}
	if err := s.grid.CheckBounds(x, y); err != nil {
		return PathSegment{}, err
	}

	s.snapshot("Add Path")
	segment := PathSegment{
		ID:       newID(),
		X:        x,
		Y:        y,
		Width:    width,
		Length:   length,
		Material: material,
		Color:    pathColor(material),
	}
	s.paths = append(s.paths, segment)
	return segment, nil
}

// RemovePath removes a path segment by ID. Unknown IDs are warned no-ops.
func (s *PlacementStore) RemovePath(id string) bool {
	for i := range s.paths {
		if s.paths[i].ID == id {
			s.snapshot("Remove Path")
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			return true
		}
	}
	s.log.Warn("remove path: id not found", zap.String("id", id))
	return false
}

// Undo restores the most recent pre-mutation snapshot. Returns false as a
// silent no-op when there is nothing to undo.
func (s *PlacementStore) Undo() bool {
	restored, ok := s.history.Undo(s.currentSnapshot("before undo"))
	if !ok {
		return false
	}
	s.restore(restored)
	return true
}

// Redo reapplies the most recently undone state. Returns false as a
// silent no-op when there is nothing to redo.
func (s *PlacementStore) Redo() bool {
	restored, ok := s.history.Redo(s.currentSnapshot("before redo"))
	if !ok {
		return false
	}
	s.restore(restored)
	return true
}

// CanUndo reports whether an undo snapshot is available.
func (s *PlacementStore) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo snapshot is available.
func (s *PlacementStore) CanRedo() bool {
	return s.history.CanRedo()
}

// Analyze recomputes the compatibility report from the current placements.
func (s *PlacementStore) Analyze() CompatibilityReport {
	return Analyze(s.plants, s.catalog)
}

// Load replaces every placement collection at once and clears the undo
// history. Used when opening a saved plan; the caller is responsible for
// validating the placements against the current grid first.
func (s *PlacementStore) Load(plants []PlantPlacement, structures []StructurePlacement, paths []PathSegment) {
	s.plants = copyPlants(plants)
	s.structures = copyStructures(structures)
	s.paths = copyPaths(paths)
	s.history.Clear()
}

// snapshot pushes the current state onto the undo stack. Called before
// every accepted mutation; a push invalidates any redo branch.
func (s *PlacementStore) snapshot(label string) {
	s.history.Push(s.currentSnapshot(label))
}

func (s *PlacementStore) currentSnapshot(label string) Snapshot {
	return MakeSnapshot(s.plants, s.structures, s.paths, label)
}

func (s *PlacementStore) restore(snap Snapshot) {
	s.plants = copyPlants(snap.Plants)
	s.structures = copyStructures(snap.Structures)
	s.paths = copyPaths(snap.Paths)
}

// pathColor maps a path material to its display color.
func pathColor(material string) string {
	switch material {
	case "gravel":
		return "#9E9E9E"
	case "stone":
		return "#78909C"
	case "mulch":
		return "#5D4037"
	case "brick":
		return "#BF360C"
	default:
		return "#BCAAA4"
	}
}
