package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a board without cells.
	ErrEmptyGrid = errors.New("gridgraph: board must have at least one row and one column")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
