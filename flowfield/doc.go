// Package flowfield provides a two-tier breadth-first direction field over
// a grid.Dims board.
//
// What:
//
//   - Flowfield[S] records, per cell, the grid.Move that leads one step
//     closer to a source cell. Sources are recorded with grid.Self.
//   - Put enqueues on the normal tier; Force enqueues on the forced tier.
//     Both are no-ops for a cell that already has a move.
//   - Execute drains the normal queue first. Only when it is empty is one
//     forced cell flooded, after which normal cells again take priority.
//     Field.Forced reports which tier is being flooded, so a Strategy can
//     switch between strict and permissive rules.
//
// Guarantees:
//
//   - Every cell reachable from a source through normal puts gets a
//     normal-tier move that is optimal under unit-step BFS; the forced tier
//     never overwrites it.
//   - Cells reachable only through forced moves still get a direction that
//     leads back towards the nearest accessible region.
//   - Following Step from any reached cell ends at a source within
//     Rows*Cols steps, since each move points at a cell recorded earlier.
//
// Complexity:
//
//   - Execute: O(N·d) time, O(N) memory, N = Rows*Cols, d = neighbours per Flood.
//   - Step: O(1). Path: O(length).
package flowfield
