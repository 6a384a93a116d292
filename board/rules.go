package board

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// noneSymbol is how TileNone is written on a board.
const noneSymbol = ' '

// Rules is a Bible backed by a tile table. Index 0 is TileNone.
// A Rules value is read-only after construction and safe for concurrent use.
type Rules struct {
	tiles    []Tile
	byName   map[string]TileType
	bySymbol map[rune]TileType
}

type rulesFile struct {
	Tiles []Tile `yaml:"tiles"`
}

// NewRules builds a table from tile definitions. Tiles get types 1..len(tiles)
// in order. Names and symbols must be unique; symbols are single characters
// and may not be a space.
func NewRules(tiles []Tile) (*Rules, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	if len(tiles) > 255 {
		return nil, fmt.Errorf("board: %d tiles exceed the 255 tile types", len(tiles))
	}
	r := &Rules{
		tiles:    make([]Tile, 0, len(tiles)+1),
		byName:   make(map[string]TileType, len(tiles)+1),
		bySymbol: make(map[rune]TileType, len(tiles)+1),
	}
	r.tiles = append(r.tiles, Tile{Name: "none", Symbol: string(noneSymbol)})
	r.byName["none"] = TileNone
	r.bySymbol[noneSymbol] = TileNone

	for _, t := range tiles {
		sym, size := utf8.DecodeRuneInString(t.Symbol)
		if t.Name == "" || size == 0 || size != len(t.Symbol) {
			return nil, fmt.Errorf("board: tile %q needs a name and a single-character symbol, got %q", t.Name, t.Symbol)
		}
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateTile, t.Name)
		}
		if _, dup := r.bySymbol[sym]; dup {
			return nil, fmt.Errorf("%w: symbol %q", ErrDuplicateTile, t.Symbol)
		}
		tt := TileType(len(r.tiles))
		r.tiles = append(r.tiles, t)
		r.byName[t.Name] = tt
		r.bySymbol[sym] = tt
	}
	return r, nil
}

// ParseRules decodes a YAML rules table.
func ParseRules(data []byte) (*Rules, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("board: parse rules: %w", err)
	}
	return NewRules(f.Tiles)
}

// LoadRules reads a YAML rules table from path. An empty path returns
// DefaultRules.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("board: read rules %s: %w", path, err)
	}
	r, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// DefaultRules returns the embedded standard terrain table.
func DefaultRules() *Rules {
	r, err := ParseRules(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("board: embedded rules are invalid: %v", err))
	}
	return r
}

// Tiles returns a copy of the table, TileNone first.
func (r *Rules) Tiles() []Tile {
	return append([]Tile(nil), r.tiles...)
}

// Lookup returns the type named name.
func (r *Rules) Lookup(name string) (TileType, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// MustLookup is Lookup for names known to exist; it panics otherwise.
func (r *Rules) MustLookup(name string) TileType {
	t, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("board: no tile named %q", name))
	}
	return t
}

// BySymbol returns the type written as sym.
func (r *Rules) BySymbol(sym rune) (TileType, bool) {
	t, ok := r.bySymbol[sym]
	return t, ok
}

// Name returns the name of t, or "" for an unknown type.
func (r *Rules) Name(t TileType) string {
	if int(t) >= len(r.tiles) {
		return ""
	}
	return r.tiles[t].Name
}

// Symbol returns the board character of t, or '?' for an unknown type.
func (r *Rules) Symbol(t TileType) rune {
	if int(t) >= len(r.tiles) {
		return '?'
	}
	sym, _ := utf8.DecodeRuneInString(r.tiles[t].Symbol)
	return sym
}

// Water implements Bible.
func (r *Rules) Water(t TileType) bool {
	return int(t) < len(r.tiles) && r.tiles[t].Water
}

// Accessible implements Bible.
func (r *Rules) Accessible(t TileType) bool {
	return int(t) < len(r.tiles) && r.tiles[t].Accessible
}

// Walkable implements Bible.
func (r *Rules) Walkable(t TileType) bool {
	return int(t) < len(r.tiles) && r.tiles[t].Walkable
}
