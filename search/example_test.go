package search_test

import (
	"fmt"
	"strings"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

////////////////////////////////////////////////////////////////////////////////
// Example: comparing strategies
////////////////////////////////////////////////////////////////////////////////

// ExampleSearch runs every strategy on a map where the direct route crosses
// Forest (cost 4 for a Human) and the detour over Land costs 1 per cell.
//
//	2 5 2
//	2 2 2
func ExampleSearch() {
	g, _ := grid.FromDigits([]string{"252", "222"})
	start, goal := grid.Point{Row: 0, Col: 0}, grid.Point{Row: 0, Col: 2}

	for _, alg := range search.Algorithms() {
		res, _ := search.Search(alg, g, terrain.Human, start, goal)
		fmt.Printf("%-13s cost=%d path=%v\n", alg, res.Cost, res.Path())
	}

	// Output:
	// dfs           cost=5 path=[(0,0) (0,1) (0,2)]
	// iterative-dfs cost=5 path=[(0,0) (0,1) (0,2)]
	// bfs           cost=5 path=[(0,0) (0,1) (0,2)]
	// astar         cost=4 path=[(0,0) (1,0) (1,1) (1,2) (0,2)]
}

// ExampleTree_Walk prints the decision tree of a depth-first search.
func ExampleTree_Walk() {
	g, _ := grid.FromDigits([]string{"22", "22"})
	res, _ := search.Search(search.DFS, g, terrain.Human,
		grid.Point{Row: 0, Col: 0}, grid.Point{Row: 1, Col: 1})

	res.Tree.Walk(func(i, depth int) bool {
		n := res.Tree.Node(i)
		fmt.Printf("%s%v %c g=%d", strings.Repeat("  ", depth), n.Pos, n.Dir.Letter(), n.G)
		if n.Expanded {
			fmt.Printf(" actions=%s", grid.FormatOrder(n.Actions))
		}
		if n.Closed {
			fmt.Printf(" %s", n.Annotation())
		}
		fmt.Println()
		return true
	})

	// Output:
	// (0,0) I g=0 actions=RD
	//   (0,1) R g=1 actions=D
	//     (1,1) D g=2 Closed Path
}

// ExampleWithAnnotate marks expanded cells: C where the search had more than
// one way forward, V where it had exactly one.
func ExampleWithAnnotate() {
	g, _ := grid.FromDigits([]string{"222", "122", "222"})
	_, _ = search.Search(search.DFS, g, terrain.Human,
		grid.Point{Row: 0, Col: 0}, grid.Point{Row: 2, Col: 0}, search.WithAnnotate())
	fmt.Print(g)

	// Output:
	// VCV
	// 12C
	// 2CV
}
