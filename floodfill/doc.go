// Package floodfill provides a reusable breadth-first "mark and flood"
// engine over a grid.Dims board.
//
// What:
//
//   - Floodfill[S] owns the mark and queue buffers; the Strategy S decides
//     where the flood starts (Map), how it spreads (Flood) and what is read
//     back afterwards (Reduce).
//   - Each mark is the hop distance from the nearest seed. A cell is marked,
//     enqueued, dequeued and flooded at most once per Execute.
//   - The edge cell is pre-marked, so PutFrom towards the edge is a no-op and
//     strategies never need to test neighbours for validity.
//
// Why:
//
//   - Several unrelated searches (ocean detection, reach maps, vision) share
//     the same bookkeeping without interface dispatch in the hot loop.
//   - Buffers are sized once to Rows*Cols+1 and reused through Reset, so a
//     flood can run every frame without allocating.
//
// Complexity:
//
//   - Execute: O(N·d) time with d = neighbours inspected per Flood, O(N) memory,
//     N = Rows*Cols.
//
// Usage:
//
//	ff := floodfill.New(dims, myStrategy{})
//	ff.Execute()
//	if d, ok := ff.Get(cell); ok {
//		// cell is d hops from the nearest seed
//	}
package floodfill
