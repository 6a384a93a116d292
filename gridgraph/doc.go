// Package gridgraph treats a board as a graph of orthogonally adjacent
// cells, enabling region labelling and minimal-cost "island" bridging.
//
// What:
//
//   - Regions labels the connected components of cells whose tile passes a
//     predicate (land, walkable ground, water, ...).
//   - Bridge computes the fewest excluded tiles to convert so that two
//     regions touch (0-1 BFS).
//   - Lakes lists the water regions that are not part of the ocean.
//
// Why:
//
//   - Map generation and validation: every start position on one landmass,
//     no unreachable pockets, counting lakes and islands.
//   - AI planning: how many tiles a unit must cross outside its terrain.
//
// Complexity:
//
//   - New (labelling): O(N·4) time, O(N) memory, N = Rows*Cols.
//   - Bridge: O(N·4) time, O(N) memory.
//
// Errors:
//
//   - ErrEmptyGrid: the board has no cells.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between the components.
package gridgraph
