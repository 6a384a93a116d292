package floodfill

import "github.com/katalvlaran/tacgrid/grid"

// Floodfill runs Strategy S over a board of fixed Dims.
// It is not safe for concurrent use; use one instance per goroutine.
type Floodfill[S Strategy] struct {
	*Marks
	strategy S
}

// New allocates the buffers for dims and binds strategy s.
// Complexity: O(N) time and memory.
func New[S Strategy](dims grid.Dims, s S) *Floodfill[S] {
	return &Floodfill[S]{Marks: newMarks(dims), strategy: s}
}

// Strategy returns the bound strategy.
func (f *Floodfill[S]) Strategy() S {
	return f.strategy
}

// Execute runs Map over every cell, drains the queue calling Flood on each
// dequeued cell, then runs Reduce over every cell.
// Seeds put before Execute are flooded as well.
func (f *Floodfill[S]) Execute() {
	n := f.dims.Size()
	for ix := 0; ix < n; ix++ {
		f.strategy.Map(f.Marks, f.dims.At(ix))
	}
	for f.head < f.size {
		at := f.dims.At(int(f.queue[f.head]))
		f.head++
		f.strategy.Flood(f.Marks, at)
	}
	for ix := 0; ix < n; ix++ {
		f.strategy.Reduce(f.Marks, f.dims.At(ix))
	}
}

func newMarks(dims grid.Dims) *Marks {
	n := dims.Size()
	m := &Marks{
		dims:  dims,
		marks: make([]uint16, n+1),
		queue: make([]uint16, n+1),
	}
	m.marks[n] = edgeMark
	return m
}

// Dims returns the extents the buffers were sized for.
func (m *Marks) Dims() grid.Dims {
	return m.dims
}

// Reset clears all marks and the queue. Buffers are kept.
func (m *Marks) Reset() {
	clear(m.marks)
	m.marks[len(m.marks)-1] = edgeMark
	m.head, m.size = 0, 0
}

// Put seeds at with distance 0. No-op if at is already marked.
func (m *Marks) Put(at grid.Cell) {
	ix := at.Ix()
	if m.marks[ix] != 0 {
		return
	}
	m.marks[ix] = 1
	m.enqueue(ix)
}

// PutFrom marks to with distance(from)+1. No-op if to is already marked.
// On a ≤255×255 board a distance never exceeds 65024, so marks cannot wrap.
func (m *Marks) PutFrom(from, to grid.Cell) {
	ix := to.Ix()
	if m.marks[ix] != 0 {
		return
	}
	m.marks[ix] = m.marks[from.Ix()] + 1
	m.enqueue(ix)
}

// Get returns the distance recorded for at, and false if at was not reached.
// The edge cell is never reached.
func (m *Marks) Get(at grid.Cell) (Distance, bool) {
	if !at.Valid() {
		return 0, false
	}
	v := m.marks[at.Ix()]
	if v == 0 {
		return 0, false
	}
	return Distance(v - 1), true
}

// Reached reports whether at has been marked.
func (m *Marks) Reached(at grid.Cell) bool {
	return at.Valid() && m.marks[at.Ix()] != 0
}

// Len returns how many cells have been marked. Each of them is flooded
// exactly once by Execute.
func (m *Marks) Len() int {
	return m.size
}

// Order returns the marked cells in visitation order.
func (m *Marks) Order() []grid.Cell {
	out := make([]grid.Cell, m.size)
	for i := 0; i < m.size; i++ {
		out[i] = m.dims.At(int(m.queue[i]))
	}
	return out
}

func (m *Marks) enqueue(ix int) {
	m.queue[m.size] = uint16(ix)
	m.size++
}
