package pathing_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/flowfield"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/pathing"
)

type PathingSuite struct {
	suite.Suite
	rules *board.Rules
}

func (s *PathingSuite) SetupSuite() {
	s.rules = board.DefaultRules()
}

func (s *PathingSuite) parse(lines ...string) *board.Grid {
	g, err := board.ParseGrid(s.rules, lines)
	require.NoError(s.T(), err)
	return g
}

// TestCorridorWithWall is the 1×5 scenario: unit at column 0, mountain at
// column 2. Column 4 routes back through 3, 2 (forced), 1, 0.
func (s *PathingSuite) TestCorridorWithWall() {
	g := s.parse("..^..")
	d := g.Dims()
	p := pathing.New(g, s.rules, pathing.WithSeed(11))
	unit := d.Cell(0, 0)
	p.Put(unit, grid.Self)
	p.Execute()

	path, err := p.Path(d.Cell(0, 4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Cell{d.Cell(0, 4), d.Cell(0, 3), d.Cell(0, 2), d.Cell(0, 1), unit}, path)
	for col := 1; col <= 4; col++ {
		require.Equal(s.T(), grid.West, p.Step(d.Cell(0, col)))
	}
	require.Equal(s.T(), grid.Self, p.Step(unit))

	// The only impassable cell on the route is the one entered by force;
	// everything on the unit's side of it is normal.
	require.Equal(s.T(), flowfield.TierNormal, p.Tier(d.Cell(0, 1)))
	require.Equal(s.T(), flowfield.TierForced, p.Tier(d.Cell(0, 2)))
	impassable := 0
	for _, c := range path {
		if !s.rules.Accessible(g.Tile(c)) {
			impassable++
			require.Equal(s.T(), d.Cell(0, 2), c)
		}
	}
	require.Equal(s.T(), 1, impassable)
}

// TestGroundAvoidsWater detours around a lake that a flier crosses.
func (s *PathingSuite) TestGroundAvoidsWater() {
	lines := []string{
		".....",
		".~~~.",
		".~~~.",
		".~~~.",
		".....",
	}
	d := s.parse(lines...).Dims()
	unit := d.Cell(2, 0)
	target := d.Cell(2, 4)

	ground := pathing.New(s.parse(lines...), s.rules, pathing.WithSeed(5))
	ground.Put(unit, grid.Self)
	ground.Execute()
	gp, err := ground.Path(target)
	require.NoError(s.T(), err)
	require.Len(s.T(), gp, 9, "ground unit walks around the lake")
	require.Equal(s.T(), flowfield.TierNormal, ground.Tier(target))
	require.Equal(s.T(), flowfield.TierForced, ground.Tier(d.Cell(2, 2)))

	air := pathing.New(s.parse(lines...), s.rules, pathing.WithSeed(5))
	air.Fly()
	require.True(s.T(), air.Flying())
	air.Put(unit, grid.Self)
	air.Execute()
	ap, err := air.Path(target)
	require.NoError(s.T(), err)
	require.Len(s.T(), ap, 5, "flier crosses the lake")
	require.Equal(s.T(), flowfield.TierNormal, air.Tier(d.Cell(2, 2)))

	viaOption := pathing.New(s.parse(lines...), s.rules, pathing.WithFly(true))
	require.True(s.T(), viaOption.Flying())
}

// TestNoneTilesAreSkipped leaves cells beyond a gap of TileNone unreached.
func (s *PathingSuite) TestNoneTilesAreSkipped() {
	g := s.parse(".. ..")
	d := g.Dims()
	p := pathing.New(g, s.rules)
	p.Put(d.Cell(0, 0), grid.Self)
	p.Execute()

	require.True(s.T(), p.Reached(d.Cell(0, 1)))
	require.False(s.T(), p.Reached(d.Cell(0, 2)))
	require.False(s.T(), p.Reached(d.Cell(0, 3)))
	require.Equal(s.T(), grid.Self, p.Step(d.Cell(0, 4)))
	_, err := p.Path(d.Cell(0, 4))
	require.True(s.T(), errors.Is(err, flowfield.ErrUnreached))
}

// TestShortestUnderRandomOrder checks optimality and termination for many
// seeds on a maze-like board.
func (s *PathingSuite) TestShortestUnderRandomOrder() {
	lines := []string{
		"......^...",
		".^^^^.^.^.",
		".^....^.^.",
		".^.^^^^.^.",
		".^......^.",
		".^^^^^^^^.",
		"..........",
	}
	g := s.parse(lines...)
	d := g.Dims()
	unit := d.Cell(2, 2)
	want := groundHops(g, s.rules, unit)

	for seed := int64(1); seed <= 20; seed++ {
		p := pathing.New(g, s.rules, pathing.WithSeed(seed))
		p.Put(unit, grid.Self)
		p.Execute()
		for c := range d.All() {
			path, err := p.Path(c)
			require.NoError(s.T(), err, "seed %d cell %v", seed, c)
			require.Equal(s.T(), unit, path[len(path)-1])
			require.LessOrEqual(s.T(), len(path), d.Size())
			if want[c.Ix()] >= 0 {
				require.Equal(s.T(), want[c.Ix()], len(path)-1, "seed %d cell %v", seed, c)
				require.Equal(s.T(), flowfield.TierNormal, p.Tier(c))
			} else {
				require.Equal(s.T(), flowfield.TierForced, p.Tier(c))
			}
		}
	}
}

// TestSeedDeterminism repeats a run and expects identical fields.
func (s *PathingSuite) TestSeedDeterminism() {
	g, err := board.NewGrid(12, 12)
	require.NoError(s.T(), err)
	g.Fill(s.rules.MustLookup("grass"))
	d := g.Dims()

	run := func(opt pathing.Option) []grid.Move {
		p := pathing.New(g, s.rules, opt)
		p.Put(d.Cell(6, 6), grid.Self)
		p.Execute()
		out := make([]grid.Move, 0, d.Size())
		for c := range d.All() {
			out = append(out, p.Step(c))
		}
		return out
	}
	first := run(pathing.WithSeed(99))
	require.Equal(s.T(), first, run(pathing.WithSeed(99)))
	require.Equal(s.T(), first, run(pathing.WithRand(rand.New(rand.NewSource(99)))))
	require.Equal(s.T(), run(pathing.WithSeed(0)), run(pathing.WithSeed(1)), "seed 0 selects the default seed")

	// On an open board many cells have two equally short routes; some
	// seed must break at least one tie differently.
	differs := false
	for seed := int64(100); seed < 110 && !differs; seed++ {
		if !assert.ObjectsAreEqual(first, run(pathing.WithSeed(seed))) {
			differs = true
		}
	}
	require.True(s.T(), differs)
}

// TestCommittedPrefix seeds several cells as sources.
func (s *PathingSuite) TestCommittedPrefix() {
	g := s.parse(".......")
	d := g.Dims()
	p := pathing.New(g, s.rules)
	p.Put(d.Cell(0, 0), grid.Self)
	p.Put(d.Cell(0, 1), grid.Self)
	p.Put(d.Cell(0, 2), grid.Self)
	p.Execute()
	path, err := p.Path(d.Cell(0, 6))
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 5)
	require.Equal(s.T(), d.Cell(0, 2), path[len(path)-1])
}

// TestRoute returns the unit's own moves towards a target.
func (s *PathingSuite) TestRoute() {
	g := s.parse(
		"...",
		"^^.",
		"...",
	)
	d := g.Dims()
	p := pathing.New(g, s.rules)
	p.Put(d.Cell(0, 0), grid.Self)
	p.Execute()
	moves, err := p.Route(d.Cell(2, 0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Move{grid.East, grid.East, grid.South, grid.South, grid.West, grid.West}, moves)

	moves, err = p.Route(d.Cell(0, 0))
	require.NoError(s.T(), err)
	require.Empty(s.T(), moves)
}

// TestResetReuse runs the same instance from two different sources.
func (s *PathingSuite) TestResetReuse() {
	g := s.parse(".....")
	d := g.Dims()
	p := pathing.New(g, s.rules)
	p.Put(d.Cell(0, 0), grid.Self)
	p.Execute()
	require.Equal(s.T(), grid.West, p.Step(d.Cell(0, 4)))

	p.Reset()
	p.Put(d.Cell(0, 4), grid.Self)
	p.Execute()
	require.Equal(s.T(), grid.East, p.Step(d.Cell(0, 0)))
	normal, forced := p.Counts()
	require.Equal(s.T(), 5, normal)
	require.Zero(s.T(), forced)
}

func TestPathingSuite(t *testing.T) {
	suite.Run(t, new(PathingSuite))
}

// groundHops is the reference BFS over accessible, walkable tiles.
func groundHops(g *board.Grid, rules *board.Rules, src grid.Cell) []int {
	d := g.Dims()
	dist := make([]int, d.Size())
	for i := range dist {
		dist[i] = -1
	}
	dist[src.Ix()] = 0
	q := []grid.Cell{src}
	for len(q) > 0 {
		c := q[0]
		q = q[1:]
		for _, n := range c.Neighbors() {
			t := g.Tile(n)
			if n.Valid() && rules.Accessible(t) && rules.Walkable(t) && dist[n.Ix()] < 0 {
				dist[n.Ix()] = dist[c.Ix()] + 1
				q = append(q, n)
			}
		}
	}
	return dist
}

func ExampleFlowfield() {
	rules := board.DefaultRules()
	g, _ := board.ParseGrid(rules, []string{
		"..^..",
		"..^..",
		".....",
	})
	d := g.Dims()
	p := pathing.New(g, rules, pathing.WithSeed(1))
	p.Put(d.Cell(0, 0), grid.Self)
	p.Execute()
	path, _ := p.Path(d.Cell(0, 4))
	fmt.Println(len(path) - 1)
	// Output:
	// 8
}
