package flowfield

import (
	"errors"

	"github.com/katalvlaran/tacgrid/grid"
)

var (
	// ErrUnreached is returned by Path when the start cell has no move.
	ErrUnreached = errors.New("flowfield: cell not reached")
	// ErrCycle is returned by Path when following moves exceeds Rows*Cols steps.
	ErrCycle = errors.New("flowfield: step chain does not terminate")
)

// Tier tells how a cell's move was recorded.
type Tier uint8

const (
	// TierNone means the cell has no move.
	TierNone Tier = iota
	// TierNormal moves were recorded through Put.
	TierNormal
	// TierForced moves were recorded through Force.
	TierForced
)

func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierForced:
		return "forced"
	default:
		return "none"
	}
}

// Strategy supplies the three phases of a flow-field search. Flood is
// called once per recorded cell; Field.Forced tells which tier it came from.
type Strategy interface {
	Map(f *Field, at grid.Cell)
	Flood(f *Field, from grid.Cell)
	Reduce(f *Field, at grid.Cell)
}

// queue is a fixed-capacity FIFO of cell indices.
type queue struct {
	items      []uint16
	head, size int
}

func (q *queue) push(ix int) {
	q.items[q.size] = uint16(ix)
	q.size++
}

func (q *queue) pop() int {
	ix := int(q.items[q.head])
	q.head++
	return ix
}

func (q *queue) empty() bool { return q.head >= q.size }

func (q *queue) reset() { q.head, q.size = 0, 0 }

// Field holds the recorded moves and both queues.
type Field struct {
	dims   grid.Dims
	moves  []grid.Move
	tiers  []Tier
	normal queue
	force  queue
	forced bool
}
