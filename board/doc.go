// Package board defines the read-only collaborators the search engines
// consume, and a small in-memory implementation of both.
//
// What:
//
//   - Board answers "which tile type is at this cell"; Bible answers the
//     passability questions about a tile type (water, accessible, walkable).
//   - Rules is a Bible backed by a YAML tile table. DefaultRules carries the
//     standard terrain set (grass, forest, mountain, water, cities, ...).
//   - Grid is a Board stored as a flat []TileType, built programmatically,
//     parsed from ASCII rows, or loaded from a YAML board file.
//
// Board files look like:
//
//	name: bay
//	tiles:
//	  - "~~~.."
//	  - "~~~.."
//	  - "....^"
//
// where every character is a tile symbol from the rules table.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrTooLarge: more than 255 rows or columns.
//   - ErrUnknownSymbol: a board character has no tile in the rules.
//   - ErrDuplicateTile: two tiles share a name or symbol.
//   - ErrNoTiles: a rules table without tiles.
//
// The engines never mutate a Board. A Board must not change while a flood
// or flow field built on it is in use.
package board
