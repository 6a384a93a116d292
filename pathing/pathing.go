package pathing

import (
	"math/rand"

	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/flowfield"
	"github.com/katalvlaran/tacgrid/grid"
)

// strategy implements the mover's passability rules.
type strategy struct {
	board board.Board
	rules board.Bible
	fly   bool
	rng   *rand.Rand
}

func (*strategy) Map(*flowfield.Field, grid.Cell) {}

func (s *strategy) Flood(f *flowfield.Field, from grid.Cell) {
	moves := grid.Moves
	for i := len(moves) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		moves[i], moves[j] = moves[j], moves[i]
	}
	for _, m := range moves {
		to := from.Eswn(m)
		t := s.board.Tile(to)
		if t == board.TileNone {
			continue
		}
		if !f.Forced() && s.rules.Accessible(t) && (s.fly || s.rules.Walkable(t)) {
			f.Put(to, grid.Flip(m))
		} else {
			f.Force(to, grid.Flip(m))
		}
	}
}

func (*strategy) Reduce(*flowfield.Field, grid.Cell) {}

// Flowfield is a direction field leading back to the seeded cells.
// Results reflect the board as it was during Execute.
// Not safe for concurrent use.
type Flowfield struct {
	ff *flowfield.Flowfield[*strategy]
}

// New binds a flow field to b and rules. Seed it with Put(cell, grid.Self)
// and call Execute before querying.
func New(b board.Board, rules board.Bible, opts ...Option) *Flowfield {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &strategy{board: b, rules: rules, fly: o.Fly, rng: o.Rand}
	return &Flowfield{ff: flowfield.New(b.Dims(), s)}
}

// Fly switches the mover to air semantics. Call before Execute.
func (p *Flowfield) Fly() {
	p.ff.Strategy().fly = true
}

// Flying reports whether air semantics are in effect.
func (p *Flowfield) Flying() bool {
	return p.ff.Strategy().fly
}

// Put records move for at on the normal tier; use grid.Self for sources.
func (p *Flowfield) Put(at grid.Cell, move grid.Move) {
	p.ff.Put(at, move)
}

// Force records move for at on the forced tier.
func (p *Flowfield) Force(at grid.Cell, move grid.Move) {
	p.ff.Force(at, move)
}

// Execute floods from the seeded cells.
func (p *Flowfield) Execute() {
	p.ff.Execute()
}

// Reset clears all moves for reuse on the same board extents.
func (p *Flowfield) Reset() {
	p.ff.Reset()
}

// Step returns the move leading from at towards a source, or grid.Self if
// at is a source or was not reached.
func (p *Flowfield) Step(at grid.Cell) grid.Move {
	return p.ff.Step(at)
}

// Reached reports whether at received a move.
func (p *Flowfield) Reached(at grid.Cell) bool {
	return p.ff.Reached(at)
}

// Tier reports whether at's move came from the normal or forced tier.
func (p *Flowfield) Tier(at grid.Cell) flowfield.Tier {
	return p.ff.Tier(at)
}

// Counts returns how many cells were reached on each tier.
func (p *Flowfield) Counts() (normal, forced int) {
	return p.ff.Len()
}

// Path follows Step from 'from' to a source, both ends included.
func (p *Flowfield) Path(from grid.Cell) ([]grid.Cell, error) {
	return p.ff.Path(from)
}

// Route returns the moves a unit at source would make to reach target:
// the reverse of Path(target), with each move flipped.
func (p *Flowfield) Route(target grid.Cell) ([]grid.Move, error) {
	path, err := p.ff.Path(target)
	if err != nil {
		return nil, err
	}
	moves := make([]grid.Move, 0, len(path)-1)
	for i := len(path) - 1; i > 0; i-- {
		moves = append(moves, grid.Flip(p.ff.Step(path[i-1])))
	}
	return moves, nil
}
