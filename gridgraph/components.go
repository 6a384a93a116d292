package gridgraph

import (
	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/ocean"
)

// connectedComponents finds all contiguous regions of kept cells and fills
// r.label on the way.
//
// Time:   O(N·4).
// Memory: O(N) for the queue and output.
func (r *Regions) connectedComponents() [][]grid.Cell {
	var comps [][]grid.Cell
	queue := make([]grid.Cell, 0, r.dims.Size())

	for start := range r.dims.All() {
		if !r.kept[start.Ix()] || r.label[start.Ix()] >= 0 {
			continue
		}
		id := len(comps)
		r.label[start.Ix()] = id
		queue = append(queue[:0], start)

		for qi := 0; qi < len(queue); qi++ {
			for _, n := range queue[qi].Neighbors() {
				// kept[edge] is false, so the edge cell is never enqueued.
				if !r.kept[n.Ix()] || r.label[n.Ix()] >= 0 {
					continue
				}
				r.label[n.Ix()] = id
				queue = append(queue, n)
			}
		}
		comps = append(comps, append([]grid.Cell(nil), queue...))
	}
	return comps
}

// Lakes returns the water regions of b that are not connected to the ocean,
// in the same order as Regions.Components.
func Lakes(b board.Board, rules board.Bible) ([][]grid.Cell, error) {
	water, err := New(b, rules.Water)
	if err != nil {
		return nil, err
	}
	sea := ocean.New(b, rules)
	sea.Execute()

	var lakes [][]grid.Cell
	for _, comp := range water.Components() {
		// A region is either wholly ocean or wholly lake.
		if !sea.Ocean(comp[0]) {
			lakes = append(lakes, comp)
		}
	}
	return lakes, nil
}
