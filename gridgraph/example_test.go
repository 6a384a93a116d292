package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/gridgraph"
)

// ExampleRegions labels four land regions split by a water cross and joins
// the two northern ones.
//
//	..~..
//	..~..
//	~~~~~
//	..~..
func ExampleRegions() {
	rules := board.DefaultRules()
	b, _ := board.ParseGrid(rules, []string{
		"..~..",
		"..~..",
		"~~~~~",
		"..~..",
	})
	regions, _ := gridgraph.New(b, rules.Walkable)

	fmt.Println("regions:", regions.Len())
	for i, comp := range regions.Components() {
		fmt.Printf("region %d: %d cells from %v\n", i, len(comp), comp[0])
	}
	_, cost, _ := regions.Bridge(0, 1)
	fmt.Println("bridge 0-1 cost:", cost)
	// Output:
	// regions: 4
	// region 0: 4 cells from (0,0)
	// region 1: 4 cells from (0,3)
	// region 2: 2 cells from (3,0)
	// region 3: 2 cells from (3,3)
	// bridge 0-1 cost: 1
}
