package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Move is one orthogonal step. Diagonals are not supported.
type Move uint8

const (
	// Self stays on the current cell.
	Self Move = iota
	// East increases the column.
	East
	// South increases the row.
	South
	// West decreases the column.
	West
	// North decreases the row.
	North
)

// Moves lists the four real moves in ESWN order.
var Moves = [4]Move{East, South, West, North}

var moveNames = [...]string{"self", "east", "south", "west", "north"}

// Flip returns the reverse of m. Self flips to Self.
func Flip(m Move) Move {
	switch m {
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case North:
		return South
	default:
		return Self
	}
}

// String returns the lower-case move name.
func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return fmt.Sprintf("move(%d)", uint8(m))
}

// ParseMove is the inverse of Move.String. It also accepts the single
// letters "e", "s", "w", "n" and "x" (self).
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range moveNames {
		if s == name {
			return Move(i), nil
		}
	}
	switch s {
	case "x":
		return Self, nil
	case "e":
		return East, nil
	case "s":
		return South, nil
	case "w":
		return West, nil
	case "n":
		return North, nil
	}
	return Self, fmt.Errorf("grid: unknown move %q", s)
}

// Dims are the row and column extents of a grid.
type Dims struct {
	Rows, Cols uint8
}

// Size returns the number of real cells, Rows*Cols.
// The edge cell has index Size().
func (d Dims) Size() int {
	return int(d.Rows) * int(d.Cols)
}

// Contains reports whether (row, col) lies on the grid.
func (d Dims) Contains(row, col int) bool {
	return row >= 0 && row < int(d.Rows) && col >= 0 && col < int(d.Cols)
}

// Cell returns the cell at (row, col), or the edge cell if it is off the grid.
func (d Dims) Cell(row, col int) Cell {
	if !d.Contains(row, col) {
		return d.Edge()
	}
	return Cell{rows: d.Rows, cols: d.Cols, index: uint16(row*int(d.Cols) + col)}
}

// At returns the cell with flat index ix, or the edge cell if ix is out of range.
func (d Dims) At(ix int) Cell {
	if ix < 0 || ix >= d.Size() {
		return d.Edge()
	}
	return Cell{rows: d.Rows, cols: d.Cols, index: uint16(ix)}
}

// Edge returns the sentinel out-of-bounds cell of this grid.
func (d Dims) Edge() Cell {
	return Cell{rows: d.Rows, cols: d.Cols, index: uint16(d.Size())}
}

// All yields every real cell in row-major order.
func (d Dims) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		n := d.Size()
		for ix := 0; ix < n; ix++ {
			if !yield(Cell{rows: d.Rows, cols: d.Cols, index: uint16(ix)}) {
				return
			}
		}
	}
}

// String formats the extents as "RxC".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}
