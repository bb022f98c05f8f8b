package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSettings = errors.New("invalid settings")
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrGameStarted     = errors.New("mines can only be placed before the first reveal")
)

type SettingsError struct {
	Field  string
	Reason string
}

// [SettingsError] implements [error]
func (e *SettingsError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidSettings, e.Field, e.Reason)
}

func (e *SettingsError) Unwrap() error {
	return ErrInvalidSettings
}

type CoordError struct {
	Coord      Coord
	Rows, Cols int
}

// [CoordError] implements [error]
func (e *CoordError) Error() string {
	return fmt.Sprintf("%s: %s on a %dx%d board", ErrOutOfBounds, e.Coord, e.Rows, e.Cols)
}

func (e *CoordError) Unwrap() error {
	return ErrOutOfBounds
}

// AssertionError is raised with panic when an internal invariant breaks.
// It never escapes the package as a return value.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
