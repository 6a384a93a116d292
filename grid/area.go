package grid

import (
	"iter"
	"math"
)

// Area is the ring of cells whose squared Euclidean distance from center
// lies in the inclusive interval [min, max]. It stores no cells; iteration
// computes them row by row, one contiguous slice at a time.
//
// An Area is a value and can be iterated any number of times.
type Area struct {
	center   Cell
	min, max int
}

// NewArea returns the ring around center with min ≤ dr²+dc² ≤ max.
// An edge center, a negative max, or min > max yields an empty Area.
func NewArea(center Cell, min, max int) Area {
	return Area{center: center, min: min, max: max}
}

// Center returns the ring's center cell.
func (a Area) Center() Cell { return a.center }

// Bounds returns the inclusive squared-distance interval.
func (a Area) Bounds() (min, max int) { return a.min, a.max }

// Contains reports whether c lies on the grid and inside the ring.
func (a Area) Contains(c Cell) bool {
	if !c.Valid() || !a.center.Valid() {
		return false
	}
	d := a.center.DistanceSq(c)
	return a.min <= d && d <= a.max
}

// Iter returns a fresh cursor positioned before the first cell.
func (a Area) Iter() Iterator {
	it := Iterator{area: a}
	if !a.center.Valid() || a.max < 0 {
		return it
	}
	// Clamp to the largest distance the grid can hold so the radius
	// arithmetic never overflows.
	rows, cols := int(a.center.rows)-1, int(a.center.cols)-1
	it.area.min = max(a.min, 0)
	it.area.max = min(a.max, rows*rows+cols*cols)
	if it.area.min > it.area.max {
		return it
	}
	a = it.area
	cr, _ := a.center.Pos()
	r := sliceRadius(0, a.max)
	it.row = max(cr-r, 0)
	it.rowEnd = min(cr+r+1, int(a.center.rows))
	if it.row < it.rowEnd {
		it.load()
	}
	return it
}

// All yields the ring's cells in row-major order.
func (a Area) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		it := a.Iter()
		for it.Next() {
			if !yield(it.Cell()) {
				return
			}
		}
	}
}

// AppendTo appends the ring's cells to dst in row-major order.
func (a Area) AppendTo(dst []Cell) []Cell {
	it := a.Iter()
	for it.Next() {
		dst = append(dst, it.Cell())
	}
	return dst
}

// Len counts the ring's cells without materialising them.
func (a Area) Len() int {
	n := 0
	it := a.Iter()
	for it.Next() {
		n++
	}
	return n
}

// Iterator walks an Area slice by slice. A row whose inner radius is
// positive is split into a left and a right slice around the gap; each
// slice is clipped to the grid columns, and empty slices are skipped.
//
//	it := area.Iter()
//	for it.Next() {
//		use(it.Cell())
//	}
type Iterator struct {
	area   Area
	row    int  // absolute row of the current slice
	rowEnd int  // one past the last row to visit
	right  bool // current slice is the right half of a gapped row
	gapped bool // current row has a gap around the center column
	col    int  // next column to yield
	stop   int  // one past the last column of the current slice
	cur    Cell
}

// Next advances to the next cell and reports whether there is one.
func (it *Iterator) Next() bool {
	for {
		if it.col < it.stop {
			it.cur = Cell{
				rows:  it.area.center.rows,
				cols:  it.area.center.cols,
				index: uint16(it.row*int(it.area.center.cols) + it.col),
			}
			it.col++
			return true
		}
		if !it.advance() {
			return false
		}
	}
}

// Cell returns the cell produced by the last successful Next.
func (it *Iterator) Cell() Cell {
	return it.cur
}

// advance moves to the next candidate slice: the right half of the current
// gapped row, or the first slice of the following row.
func (it *Iterator) advance() bool {
	if it.row >= it.rowEnd {
		return false
	}
	if it.gapped && !it.right {
		it.right = true
	} else {
		it.row++
		it.right = false
	}
	if it.row >= it.rowEnd {
		it.col, it.stop = 0, 0
		return false
	}
	it.load()
	return true
}

// load computes the column span of the slice at (row, right).
func (it *Iterator) load() {
	cr, cc := it.area.center.Pos()
	dr := it.row - cr
	outer := sliceRadius(dr, it.area.max)
	inner := innerRadius(dr, it.area.min)
	it.gapped = inner > 0

	var lo, hi int // inclusive
	switch {
	case outer < 0 || inner > outer:
		lo, hi = 0, -1
	case inner == 0:
		lo, hi = cc-outer, cc+outer
	case !it.right:
		lo, hi = cc-outer, cc-inner
	default:
		lo, hi = cc+inner, cc+outer
	}
	lo = max(lo, 0)
	hi = min(hi, int(it.area.center.cols)-1)
	if hi < lo {
		it.col, it.stop = 0, 0
		return
	}
	it.col, it.stop = lo, hi+1
}

// sliceRadius returns the largest dc ≥ 0 with dc²+dr² ≤ max, or -1 when
// no such dc exists.
func sliceRadius(dr, max int) int {
	if max < dr*dr {
		return -1
	}
	return isqrt(max - dr*dr)
}

// innerRadius returns the smallest dc ≥ 0 with dc²+dr² ≥ min.
func innerRadius(dr, min int) int {
	if min <= dr*dr {
		return 0
	}
	return isqrt(min-dr*dr-1) + 1
}

// isqrt returns ⌊√n⌋ for n ≥ 0. Comparisons divide instead of squaring so
// n near math.MaxInt cannot overflow.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
