// Package ocean detects the water connected to the open sea.
//
// A water tile is ocean when a chain of orthogonally adjacent water tiles
// links it to a water tile on the outer border of the board. Water enclosed
// by land (a lake) is not ocean.
//
// Complexity: Execute is O(N) time, O(N) memory, N = Rows*Cols.
package ocean

import (
	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/floodfill"
	"github.com/katalvlaran/tacgrid/grid"
)

// strategy seeds border water and floods through water.
type strategy struct {
	board board.Board
	rules board.Bible
}

func (s strategy) water(c grid.Cell) bool {
	return c.Valid() && s.rules.Water(s.board.Tile(c))
}

func (s strategy) Map(m *floodfill.Marks, at grid.Cell) {
	if at.OnBorder() && s.water(at) {
		m.Put(at)
	}
}

func (s strategy) Flood(m *floodfill.Marks, from grid.Cell) {
	for _, n := range from.Neighbors() {
		if s.water(n) {
			m.PutFrom(from, n)
		}
	}
}

func (strategy) Reduce(*floodfill.Marks, grid.Cell) {}

// Floodfill answers "is this cell part of the contiguous ocean".
// Results reflect the board as it was during Execute.
type Floodfill struct {
	ff *floodfill.Floodfill[strategy]
}

// New binds a flood to b and rules. Call Execute before querying.
func New(b board.Board, rules board.Bible) *Floodfill {
	return &Floodfill{ff: floodfill.New(b.Dims(), strategy{board: b, rules: rules})}
}

// Execute runs the flood. Call Reset first when reusing the instance.
func (f *Floodfill) Execute() {
	f.ff.Execute()
}

// Reset clears the previous result.
func (f *Floodfill) Reset() {
	f.ff.Reset()
}

// Ocean reports whether c is ocean water. The edge cell is never ocean.
func (f *Floodfill) Ocean(c grid.Cell) bool {
	return f.ff.Reached(c)
}

// Distance returns how many water steps separate c from the open border,
// and false if c is not ocean.
func (f *Floodfill) Distance(c grid.Cell) (floodfill.Distance, bool) {
	return f.ff.Get(c)
}

// Count returns the number of ocean cells.
func (f *Floodfill) Count() int {
	return f.ff.Len()
}
