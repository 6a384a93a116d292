package gridgraph

import (
	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/grid"
)

// Keep selects the tiles that belong to regions.
type Keep func(t board.TileType) bool

// Regions is the component labelling of a board under a Keep predicate.
// It is immutable once built and reflects the board at construction time.
type Regions struct {
	dims  grid.Dims
	tiles []board.TileType // snapshot, TileNone for the edge cell
	kept  []bool
	label []int // component per cell index, -1 when not kept
	comps [][]grid.Cell
}

// New snapshots b and labels its regions of kept tiles.
// Returns ErrEmptyGrid if b has no cells.
// Complexity: O(N·4) time and O(N) memory.
func New(b board.Board, keep Keep) (*Regions, error) {
	d := b.Dims()
	n := d.Size()
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	r := &Regions{
		dims:  d,
		tiles: make([]board.TileType, n+1),
		kept:  make([]bool, n+1),
		label: make([]int, n),
	}
	for c := range d.All() {
		t := b.Tile(c)
		r.tiles[c.Ix()] = t
		r.kept[c.Ix()] = t != board.TileNone && keep(t)
		r.label[c.Ix()] = -1
	}
	r.comps = r.connectedComponents()
	return r, nil
}

// Dims returns the labelled board's extents.
func (r *Regions) Dims() grid.Dims {
	return r.dims
}

// Components returns every region as a list of cells. Regions are ordered
// by their first cell in row-major order; cells within a region are in BFS
// order from that first cell.
func (r *Regions) Components() [][]grid.Cell {
	return r.comps
}

// Len returns the number of regions.
func (r *Regions) Len() int {
	return len(r.comps)
}

// Label returns the region index of c, or -1 if c is not kept.
// Complexity: O(1).
func (r *Regions) Label(c grid.Cell) int {
	if !c.Valid() {
		return -1
	}
	return r.label[c.Ix()]
}

// Kept reports whether c's tile passes the predicate.
func (r *Regions) Kept(c grid.Cell) bool {
	return c.Valid() && r.kept[c.Ix()]
}
