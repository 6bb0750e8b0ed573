package model

const defaultMaxDepth = 50

// Snapshot captures the three placement collections at a point in time.
type Snapshot struct {
	Plants     []PlantPlacement
	Structures []StructurePlacement
	Paths      []PathSegment
	Label      string // Human-readable description (e.g. "Place Tomato")
}

// History manages undo/redo stacks of placement snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied. When the
// stack exceeds the max depth the oldest snapshots are evicted.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot creates a snapshot of the given collections with a label.
func MakeSnapshot(plants []PlantPlacement, structures []StructurePlacement, paths []PathSegment, label string) Snapshot {
	return Snapshot{
		Plants:     copyPlants(plants),
		Structures: copyStructures(structures),
		Paths:      copyPaths(paths),
		Label:      label,
	}
}

// copyPlants returns a copy of a plant placement slice.
func copyPlants(plants []PlantPlacement) []PlantPlacement {
	if plants == nil {
		return nil
	}
	cp := make([]PlantPlacement, len(plants))
	copy(cp, plants)
	return cp
}

// copyStructures returns a copy of a structure placement slice.
func copyStructures(structures []StructurePlacement) []StructurePlacement {
	if structures == nil {
		return nil
	}
	cp := make([]StructurePlacement, len(structures))
	copy(cp, structures)
	return cp
}

// copyPaths returns a copy of a path segment slice.
func copyPaths(paths []PathSegment) []PathSegment {
	if paths == nil {
		return nil
	}
	cp := make([]PathSegment, len(paths))
	copy(cp, paths)
	return cp
}
