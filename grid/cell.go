package grid

import "fmt"

// Cell addresses one grid position as a flat row-major index and carries
// the grid extents alongside. It is a plain value; the zero Cell is the
// edge cell of the empty 0x0 grid.
type Cell struct {
	rows, cols uint8
	index      uint16
}

// Dims returns the extents of the grid this cell belongs to.
func (c Cell) Dims() Dims {
	return Dims{Rows: c.rows, Cols: c.cols}
}

// Ix returns the flat index. The edge cell has index Rows*Cols.
// Complexity: O(1).
func (c Cell) Ix() int {
	return int(c.index)
}

// Valid reports whether c is a real cell rather than the edge sentinel.
func (c Cell) Valid() bool {
	return int(c.index) < int(c.rows)*int(c.cols)
}

// Pos returns (row, col). Only meaningful when c is Valid.
// Complexity: O(1).
func (c Cell) Pos() (row, col int) {
	if c.cols == 0 {
		return 0, 0
	}
	return int(c.index) / int(c.cols), int(c.index) % int(c.cols)
}

// Row returns the row of a valid cell.
func (c Cell) Row() int {
	r, _ := c.Pos()
	return r
}

// Col returns the column of a valid cell.
func (c Cell) Col() int {
	_, col := c.Pos()
	return col
}

// Eswn returns the neighbour of c in direction m, or the edge cell if that
// neighbour is off the grid. The edge cell's neighbours are the edge cell.
// Complexity: O(1).
func (c Cell) Eswn(m Move) Cell {
	if !c.Valid() {
		return c
	}
	row, col := c.Pos()
	switch m {
	case East:
		col++
	case South:
		row++
	case West:
		col--
	case North:
		row--
	}
	return c.Dims().Cell(row, col)
}

// Neighbors returns the four orthogonal neighbours in ESWN order.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{c.Eswn(East), c.Eswn(South), c.Eswn(West), c.Eswn(North)}
}

// OnBorder reports whether a valid cell lies on the outer ring of the grid.
func (c Cell) OnBorder() bool {
	if !c.Valid() {
		return false
	}
	row, col := c.Pos()
	return row == 0 || col == 0 || row == int(c.rows)-1 || col == int(c.cols)-1
}

// DistanceSq returns the squared Euclidean distance between two valid cells.
func (c Cell) DistanceSq(o Cell) int {
	r1, c1 := c.Pos()
	r2, c2 := o.Pos()
	dr, dc := r2-r1, c2-c1
	return dr*dr + dc*dc
}

// String formats a valid cell as "(row,col)" and the sentinel as "edge".
func (c Cell) String() string {
	if !c.Valid() {
		return "edge"
	}
	row, col := c.Pos()
	return fmt.Sprintf("(%d,%d)", row, col)
}
