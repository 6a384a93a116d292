package board

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tacgrid/grid"
)

// Grid is an in-memory Board. The zero tile of every cell is TileNone.
type Grid struct {
	Name  string
	dims  grid.Dims
	tiles []TileType
}

// NewGrid allocates a rows×cols board filled with TileNone.
// Returns ErrEmptyGrid for a zero extent and ErrTooLarge above MaxExtent.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows > MaxExtent || cols > MaxExtent {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, rows, cols)
	}
	d := grid.Dims{Rows: uint8(rows), Cols: uint8(cols)}
	return &Grid{dims: d, tiles: make([]TileType, d.Size())}, nil
}

// ParseGrid builds a board from ASCII rows, one rune per cell, using the
// symbols of rules. A space is TileNone.
func ParseGrid(rules *Rules, lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, n, cols)
		}
	}
	g, err := NewGrid(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		col := 0
		for _, sym := range line {
			t, ok := rules.BySymbol(sym)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, sym, row, col)
			}
			g.tiles[row*cols+col] = t
			col++
		}
	}
	return g, nil
}

// ParseFile decodes a YAML board file.
func ParseFile(rules *Rules, data []byte) (*Grid, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("board: parse board: %w", err)
	}
	g, err := ParseGrid(rules, f.Tiles)
	if err != nil {
		return nil, err
	}
	g.Name = f.Name
	return g, nil
}

// LoadGrid reads a YAML board file from path.
func LoadGrid(rules *Rules, path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("board: read board %s: %w", path, err)
	}
	g, err := ParseFile(rules, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if g.Name == "" {
		g.Name = path
	}
	return g, nil
}

// Dims implements Board.
func (g *Grid) Dims() grid.Dims {
	return g.dims
}

// Tile implements Board.
func (g *Grid) Tile(c grid.Cell) TileType {
	if !c.Valid() {
		return TileNone
	}
	return g.tiles[c.Ix()]
}

// Set stores t at c. Setting the edge cell is a no-op.
func (g *Grid) Set(c grid.Cell, t TileType) {
	if !c.Valid() {
		return
	}
	g.tiles[c.Ix()] = t
}

// Fill sets every cell to t.
func (g *Grid) Fill(t TileType) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Render draws the board with rules symbols, one line per row. When mark
// returns true for a cell its rune replaces the tile symbol.
func (g *Grid) Render(rules *Rules, mark func(grid.Cell) (rune, bool)) string {
	var sb strings.Builder
	rows, cols := int(g.dims.Rows), int(g.dims.Cols)
	sb.Grow(rows * (cols + 1))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := g.dims.Cell(row, col)
			if mark != nil {
				if r, ok := mark(c); ok {
					sb.WriteRune(r)
					continue
				}
			}
			sb.WriteRune(rules.Symbol(g.Tile(c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
