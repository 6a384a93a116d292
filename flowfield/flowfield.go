package flowfield

import (
	"fmt"

	"github.com/katalvlaran/tacgrid/grid"
)

// Flowfield runs Strategy S over a board of fixed Dims.
// It is not safe for concurrent use; use one instance per goroutine.
type Flowfield[S Strategy] struct {
	*Field
	strategy S
}

// New allocates the buffers for dims and binds strategy s.
// Complexity: O(N) time and memory.
func New[S Strategy](dims grid.Dims, s S) *Flowfield[S] {
	return &Flowfield[S]{Field: newField(dims), strategy: s}
}

// Strategy returns the bound strategy.
func (f *Flowfield[S]) Strategy() S {
	return f.strategy
}

// Execute runs Map over every cell, floods the normal queue to exhaustion,
// then floods forced cells one at a time, returning to the normal queue
// whenever a forced flood put something on it. Reduce runs last.
func (f *Flowfield[S]) Execute() {
	n := f.dims.Size()
	for ix := 0; ix < n; ix++ {
		f.strategy.Map(f.Field, f.dims.At(ix))
	}
	for {
		f.forced = false
		for !f.normal.empty() {
			f.strategy.Flood(f.Field, f.dims.At(f.normal.pop()))
		}
		if f.force.empty() {
			break
		}
		f.forced = true
		f.strategy.Flood(f.Field, f.dims.At(f.force.pop()))
	}
	f.forced = false
	for ix := 0; ix < n; ix++ {
		f.strategy.Reduce(f.Field, f.dims.At(ix))
	}
}

func newField(dims grid.Dims) *Field {
	n := dims.Size()
	f := &Field{
		dims:   dims,
		moves:  make([]grid.Move, n+1),
		tiers:  make([]Tier, n+1),
		normal: queue{items: make([]uint16, n+1)},
		force:  queue{items: make([]uint16, n+1)},
	}
	f.tiers[n] = TierNormal
	return f
}

// Dims returns the extents the buffers were sized for.
func (f *Field) Dims() grid.Dims {
	return f.dims
}

// Reset clears all moves and both queues. Buffers are kept.
func (f *Field) Reset() {
	clear(f.moves)
	clear(f.tiers)
	f.tiers[len(f.tiers)-1] = TierNormal
	f.normal.reset()
	f.force.reset()
	f.forced = false
}

// Put records that stepping move from at leads towards a source and
// enqueues at on the normal tier. No-op if at already has a move.
func (f *Field) Put(at grid.Cell, move grid.Move) {
	f.record(at, move, TierNormal, &f.normal)
}

// Force records move for at on the forced tier. No-op if at already has a
// move from either tier.
func (f *Field) Force(at grid.Cell, move grid.Move) {
	f.record(at, move, TierForced, &f.force)
}

func (f *Field) record(at grid.Cell, move grid.Move, tier Tier, q *queue) {
	ix := at.Ix()
	if f.tiers[ix] != TierNone {
		return
	}
	f.moves[ix] = move
	f.tiers[ix] = tier
	q.push(ix)
}

// Forced reports whether the cell currently being flooded came from the
// forced queue. Only meaningful inside Strategy.Flood.
func (f *Field) Forced() bool {
	return f.forced
}

// Step returns the recorded move for at, or grid.Self if there is none.
func (f *Field) Step(at grid.Cell) grid.Move {
	if !at.Valid() {
		return grid.Self
	}
	return f.moves[at.Ix()]
}

// Reached reports whether at has a recorded move.
func (f *Field) Reached(at grid.Cell) bool {
	return f.Tier(at) != TierNone
}

// Tier reports how at's move was recorded.
func (f *Field) Tier(at grid.Cell) Tier {
	if !at.Valid() {
		return TierNone
	}
	return f.tiers[at.Ix()]
}

// Len returns the number of recorded cells per tier.
func (f *Field) Len() (normal, forced int) {
	return f.normal.size, f.force.size
}

// Path follows Step from 'from' until a source (grid.Self) and returns the
// visited cells, 'from' first and the source last.
// Returns ErrUnreached if from has no move, ErrCycle if the chain exceeds
// Rows*Cols steps.
func (f *Field) Path(from grid.Cell) ([]grid.Cell, error) {
	if !f.Reached(from) {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, from)
	}
	limit := f.dims.Size()
	path := []grid.Cell{from}
	for at := from; ; {
		m := f.Step(at)
		if m == grid.Self {
			return path, nil
		}
		if len(path) > limit {
			return nil, fmt.Errorf("%w: from %v", ErrCycle, from)
		}
		at = at.Eswn(m)
		if !f.Reached(at) {
			return nil, fmt.Errorf("%w: step %v leaves the field at %v", ErrUnreached, m, at)
		}
		path = append(path, at)
	}
}
