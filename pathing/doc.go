// Package pathing computes unit-movement flow fields.
//
// A Flowfield is seeded with the mover's position (and any committed path
// prefix) via Put(cell, grid.Self). Execute then floods outward:
//
//   - neighbours whose tile is TileNone (off the playable area) are skipped;
//   - on the normal tier, a neighbour that is accessible and either walkable
//     or the mover flies, is recorded with Put;
//   - everything else is recorded with Force and only flooded once the
//     normal tier is exhausted. While flooding forced cells every neighbour
//     is forced.
//
// Step(cell) then tells which way to go from cell to get one tile closer
// to the mover; Path follows it all the way.
//
// Neighbours are visited in a shuffled order drawn from an injected
// *rand.Rand, so among equally short routes none is preferred by direction.
// Which of them wins is deliberately unspecified; fix the seed (WithSeed)
// to make it reproducible.
//
// Complexity: Execute is O(N) time, O(N) memory, N = Rows*Cols.
package pathing
