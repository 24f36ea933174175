package world

import "errors"

var (
	// ErrOutOfBounds is returned by accessors given a coordinate outside the grid.
	ErrOutOfBounds = errors.New("world: coordinate out of bounds")
	// ErrInvalidDimensions is returned when a grid would have no cells.
	ErrInvalidDimensions = errors.New("world: invalid grid dimensions")
	// ErrShapeMismatch is returned by FromTiles when rows have differing lengths.
	ErrShapeMismatch = errors.New("world: tile array shape mismatch")
)
