package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/grid"
)

// Bridge finds a minimum-conversion path of excluded cells connecting any
// cell of component srcComp to any cell of component dstComp. Each excluded
// cell on the path costs 1; TileNone cells cannot be converted.
// Returns the path (both kept end cells included) and the total cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • moving into a kept cell     → cost 0
//     • moving into an excluded one → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(N·4) time, O(N) memory.
func (r *Regions) Bridge(srcComp, dstComp int) (path []grid.Cell, cost int, err error) {
	if srcComp < 0 || srcComp >= len(r.comps) || dstComp < 0 || dstComp >= len(r.comps) {
		return nil, 0, ErrComponentIndex
	}

	n := r.dims.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, c := range r.comps[srcComp] {
		dist[c.Ix()] = 0
		dq.PushFront(c)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(grid.Cell)
		if r.label[u.Ix()] == dstComp {
			target = u.Ix()
			break
		}
		for _, v := range u.Neighbors() {
			if !v.Valid() || r.tiles[v.Ix()] == board.TileNone {
				continue
			}
			step := 0
			if !r.kept[v.Ix()] {
				step = 1
			}
			nd := dist[u.Ix()] + step
			if nd < dist[v.Ix()] {
				dist[v.Ix()] = nd
				prev[v.Ix()] = u.Ix()
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, r.dims.At(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
