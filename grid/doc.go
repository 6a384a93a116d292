// Package grid provides the addressing primitives of a bounded square-tile
// board: Cell, Move and the ring iterator Area.
//
// What:
//
//   - Dims holds the row/column extents of a board (each ≤ 255).
//   - Cell is a flat index that carries its grid's extents, so row/column
//     arithmetic needs no lookup table.
//   - Every grid has exactly one sentinel "edge" cell at index Rows*Cols.
//     Neighbour lookups that leave the board resolve to it instead of failing.
//   - Area enumerates the cells whose squared Euclidean distance from a
//     center lies in an inclusive [min, max] interval, row by row.
//
// Why:
//
//   - Order-giving UI: "which tiles are within range 2..5 of this unit".
//   - Flood and flow-field searches (see floodfill, flowfield) address their
//     buffers by Cell.Ix() and never branch on bounds while expanding.
//
// Complexity:
//
//   - Cell.Eswn, Cell.Pos, Cell.Ix: O(1).
//   - Area iteration: O(R + K), R = rows spanned by the ring, K = cells yielded.
//     Iteration never allocates.
//
// Cells from grids of different Dims must never be compared or combined.
// This is a caller contract and is not checked at runtime.
package grid
