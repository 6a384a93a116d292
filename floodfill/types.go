package floodfill

import "github.com/katalvlaran/tacgrid/grid"

// Distance is a hop count from the nearest seed cell.
type Distance uint16

// edgeMark pre-marks the edge cell with the largest representable distance,
// so it never looks closer than a real cell and is never enqueued.
const edgeMark = ^uint16(0)

// Strategy supplies the three phases of a flood.
//
//   - Map is called once per real cell before flooding; call m.Put to seed.
//   - Flood is called once per marked cell in BFS order; call m.PutFrom to spread.
//   - Reduce is called once per real cell after flooding; call m.Get to read.
type Strategy interface {
	Map(m *Marks, at grid.Cell)
	Flood(m *Marks, from grid.Cell)
	Reduce(m *Marks, at grid.Cell)
}

// Marks holds the distance marks and the FIFO of a flood.
// A mark of 0 means unmarked; v > 0 means distance v-1.
type Marks struct {
	dims  grid.Dims
	marks []uint16
	queue []uint16
	head  int
	size  int
}
