package model

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by placement operations. Callers match them
// with errors.Is to decide how a failure is surfaced.
var (
	// ErrOutOfBounds is returned when a cell lies outside the computed grid.
	ErrOutOfBounds = errors.New("outside garden bounds")

	// ErrOccupied is returned when the target cell already holds a plant.
	ErrOccupied = errors.New("cell already occupied")

	// ErrNotFound is returned when a catalog or placement id does not resolve.
	ErrNotFound = errors.New("not found")
)

// SettingsError describes an invalid GardenSettings field.
type SettingsError struct {
	Field  string
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid garden settings (%s): %s", e.Field, e.Reason)
}
