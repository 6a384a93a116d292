package board

import (
	"errors"

	"github.com/katalvlaran/tacgrid/grid"
)

// Sentinel errors for board and rules construction.
var (
	// ErrEmptyGrid indicates a board with no rows or no columns.
	ErrEmptyGrid = errors.New("board: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrTooLarge indicates more than 255 rows or columns.
	ErrTooLarge = errors.New("board: grid exceeds 255 rows or columns")
	// ErrUnknownSymbol indicates a board character missing from the rules.
	ErrUnknownSymbol = errors.New("board: unknown tile symbol")
	// ErrDuplicateTile indicates two tiles sharing a name or symbol.
	ErrDuplicateTile = errors.New("board: duplicate tile")
	// ErrNoTiles indicates a rules table without any tile.
	ErrNoTiles = errors.New("board: rules define no tiles")
)

// MaxExtent is the largest number of rows or columns a board may have.
const MaxExtent = 255

// TileType identifies a terrain type. Values index the Rules table.
type TileType uint8

// TileNone marks a cell outside the playable area. The edge cell is TileNone.
const TileNone TileType = 0

// Board is the tile occupancy the engines read.
type Board interface {
	Dims() grid.Dims
	// Tile returns the tile at c, or TileNone for the edge cell.
	Tile(c grid.Cell) TileType
}

// Bible is the rules engine's view of tile passability.
type Bible interface {
	// Water reports whether t is water.
	Water(t TileType) bool
	// Accessible reports whether any unit class may enter t.
	Accessible(t TileType) bool
	// Walkable reports whether ground units may enter t.
	Walkable(t TileType) bool
}

// Tile describes one terrain type in a rules table.
type Tile struct {
	Name       string `yaml:"name"`
	Symbol     string `yaml:"symbol"`
	Water      bool   `yaml:"water"`
	Accessible bool   `yaml:"accessible"`
	Walkable   bool   `yaml:"walkable"`
}

// File is the YAML layout of a board file.
type File struct {
	Name  string   `yaml:"name"`
	Tiles []string `yaml:"tiles"`
}
