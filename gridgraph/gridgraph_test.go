package gridgraph_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/gridgraph"
)

func parse(t *testing.T, lines ...string) (*board.Grid, *board.Rules) {
	t.Helper()
	r := board.DefaultRules()
	g, err := board.ParseGrid(r, lines)
	require.NoError(t, err)
	return g, r
}

func land(r *board.Rules) gridgraph.Keep {
	return func(t board.TileType) bool { return r.Walkable(t) }
}

// TestComponents_Islands labels two islands separated by water.
//
//	~..~
//	..~~
//	~~..
func TestComponents_Islands(t *testing.T) {
	g, r := parse(t,
		"~..~",
		"..~~",
		"~~..",
	)
	regions, err := gridgraph.New(g, land(r))
	require.NoError(t, err)
	comps := regions.Components()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)

	d := g.Dims()
	assert.Equal(t, 0, regions.Label(d.Cell(0, 1)))
	assert.Equal(t, 0, regions.Label(d.Cell(1, 0)))
	assert.Equal(t, 1, regions.Label(d.Cell(2, 3)))
	assert.Equal(t, -1, regions.Label(d.Cell(0, 0)))
	assert.Equal(t, -1, regions.Label(d.Edge()))
	assert.False(t, regions.Kept(d.Cell(0, 0)))
	assert.True(t, regions.Kept(d.Cell(2, 2)))
	assert.Equal(t, 2, regions.Len())
}

// TestComponents_DiagonalSeparates keeps corner-touching cells apart.
func TestComponents_DiagonalSeparates(t *testing.T) {
	g, r := parse(t,
		".~.",
		"~.~",
		".~.",
	)
	regions, err := gridgraph.New(g, land(r))
	require.NoError(t, err)
	assert.Equal(t, 5, regions.Len())
}

// TestComponents_NoneIsNeverKept ignores off-board tiles even if the
// predicate accepts them.
func TestComponents_NoneIsNeverKept(t *testing.T) {
	g, _ := parse(t, ". .")
	regions, err := gridgraph.New(g, func(board.TileType) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, 2, regions.Len())
}

// TestBridge_Line converts the single water cell between two islands.
func TestBridge_Line(t *testing.T) {
	g, r := parse(t, ".~.")
	regions, err := gridgraph.New(g, land(r))
	require.NoError(t, err)
	path, cost, err := regions.Bridge(0, 1)
	require.NoError(t, err)
	d := g.Dims()
	assert.Equal(t, 1, cost)
	assert.Equal(t, []grid.Cell{d.Cell(0, 0), d.Cell(0, 1), d.Cell(0, 2)}, path)
}

// TestBridge_ChoosesCheapest prefers a longer path with fewer conversions.
func TestBridge_ChoosesCheapest(t *testing.T) {
	g, r := parse(t,
		".~~~.",
		"..~..",
		"~...~",
	)
	// One region: the land is connected around the bottom.
	regions, err := gridgraph.New(g, land(r))
	require.NoError(t, err)
	require.Equal(t, 1, regions.Len())

	g2, _ := parse(t,
		".~~~.",
		".~~~.",
		".~~~.",
		"..~..",
	)
	regions, err = gridgraph.New(g2, land(r))
	require.NoError(t, err)
	require.Equal(t, 2, regions.Len())
	path, cost, err := regions.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, 0, regions.Label(path[0]))
	assert.Equal(t, 1, regions.Label(path[len(path)-1]))
	assert.Equal(t, []grid.Cell{g2.Dims().Cell(3, 1), g2.Dims().Cell(3, 2), g2.Dims().Cell(3, 3)}, path)
}

// TestBridge_Errors covers bad indices and unbridgeable regions.
func TestBridge_Errors(t *testing.T) {
	g, r := parse(t, ". .")
	regions, err := gridgraph.New(g, land(r))
	require.NoError(t, err)

	_, _, err = regions.Bridge(0, 5)
	require.True(t, errors.Is(err, gridgraph.ErrComponentIndex))
	_, _, err = regions.Bridge(-1, 0)
	require.True(t, errors.Is(err, gridgraph.ErrComponentIndex))
	_, _, err = regions.Bridge(0, 1)
	require.True(t, errors.Is(err, gridgraph.ErrNoPath), "TileNone cannot be converted")

	path, cost, err := regions.Bridge(1, 1)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Len(t, path, 1)
}

// TestLakes separates enclosed water from the sea.
func TestLakes(t *testing.T) {
	g, r := parse(t,
		"~~.....",
		"~..~~..",
		"...~~.~",
		"......~",
	)
	lakes, err := gridgraph.Lakes(g, r)
	require.NoError(t, err)
	require.Len(t, lakes, 1)
	assert.Len(t, lakes[0], 4)
}

// emptyBoard is a Board with no cells.
type emptyBoard struct{}

func (emptyBoard) Dims() grid.Dims { return grid.Dims{} }
func (emptyBoard) Tile(grid.Cell) board.TileType { return board.TileNone }

func TestNew_Empty(t *testing.T) {
	_, err := gridgraph.New(emptyBoard{}, func(board.TileType) bool { return true })
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.Lakes(emptyBoard{}, board.DefaultRules())
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
