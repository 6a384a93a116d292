// Package tacgrid is a grid engine for turn-based tactical maps: cells
// packed into 16 bits, ring-shaped areas, and reusable flood fills and
// flow fields driven by pluggable strategies.
//
// 🚀 What is tacgrid?
//
//	A small, allocation-conscious toolkit that brings together:
//		• Cells: (row, col) on grids up to 255×255 plus one sentinel edge cell
//		• Areas: lazy iteration of the cells in a squared-distance ring
//		• Floodfill: breadth-first distances from many sources
//		• Flowfield: two-tier (normal / forced) per-cell step directions
//		• Ocean: water flood from the map border
//		• Pathing: ground and air unit movement fields
//		• Regions: connected land or water regions and cheapest bridges
//
// ✨ Why choose tacgrid?
//
//   - Fixed buffers: a field is sized once per map and reset between runs
//   - No boxing: strategies are type parameters, calls are monomorphised
//   - Deterministic: neighbour shuffling uses an injected, seeded RNG
//   - Edge-safe: out-of-range neighbours collapse onto one pre-marked cell
//
// Packages:
//
//	grid/      : Cell, Dims, Move and Area
//	floodfill/ : generic breadth-first marking engine
//	flowfield/ : generic two-tier step-direction engine
//	board/     : tile rules (YAML) and board files
//	ocean/     : border-seeded water flood
//	pathing/   : unit movement flow fields
//	gridgraph/ : region labelling, lakes and bridges
//	cmd/tacgrid: command-line inspector
//
// Quick ASCII example, the ground path from @ past a mountain:
//
//	. . ^ . .   board
//	@ + ! ! !   tiers: + normal, ! forced
//
// See each subpackage's doc.go for details.
package tacgrid
