package search_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

// randomGrid draws a rows×cols map from alphabet, forcing Land at both corners.
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int, alphabet string) *grid.Grid {
	t.Helper()
	lines := make([]string, rows)
	for r := range lines {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			if (r == 0 && c == 0) || (r == rows-1 && c == cols-1) {
				b.WriteByte('2')
				continue
			}
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		lines[r] = b.String()
	}
	return mustGrid(t, lines...)
}

var orders = []string{"RDLU", "URDL", "LDRU", "DLUR"}

// TestProperties_TreeInvariants checks, on random weighted maps and every
// direction order, the structural guarantees of each algorithm's tree.
func TestProperties_TreeInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		g := randomGrid(t, rng, 5+rng.Intn(5), 5+rng.Intn(5), "1222334455")
		start, goal := pt(0, 0), pt(g.Rows()-1, g.Cols()-1)
		agent := terrain.Agents()[trial%len(terrain.Agents())]
		order, err := grid.ParseOrder(orders[trial%len(orders)])
		require.NoError(t, err)

		for _, alg := range search.Algorithms() {
			res, err := search.Search(alg, g, agent, start, goal, search.WithOrder(order...))
			require.NoError(t, err)
			tr := res.Tree

			created := map[grid.Point]int{}
			expanded := map[grid.Point]int{}
			for i := 0; i < tr.Len(); i++ {
				n := tr.Node(i)
				created[n.Pos]++
				if n.Expanded {
					expanded[n.Pos]++
				}
				if n.Parent < 0 {
					assert.Equal(t, 0, n.G)
					continue
				}
				cost := terrain.Cost(agent, g.Terrain(n.Pos))
				assert.Less(t, cost, terrain.Impassable, "%s entered an impassable cell", alg)
				assert.Equal(t, tr.Node(n.Parent).G+cost, n.G, "%s: G is not cumulative", alg)
				assert.Equal(t, 1, grid.Manhattan(tr.Node(n.Parent).Pos, n.Pos))
				assert.Len(t, n.Executed, len(n.Children))
			}
			for p, k := range expanded {
				assert.Equal(t, 1, k, "%s expanded %v twice", alg, p)
			}
			if alg != search.AStar {
				for p, k := range created {
					assert.Equal(t, 1, k, "%s created %v twice", alg, p)
				}
			}
			if res.Found {
				assert.Equal(t, tr.Node(tr.Goal()).G, res.Cost)
			}
		}
	}
}

// TestProperties_CostOrdering: A* never pays more than BFS or DFS, and all
// algorithms agree on reachability.
func TestProperties_CostOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 60; trial++ {
		g := randomGrid(t, rng, 4+rng.Intn(6), 4+rng.Intn(6), "122345")
		start, goal := pt(0, 0), pt(g.Rows()-1, g.Cols()-1)

		results := map[search.Algorithm]*search.Result{}
		for _, alg := range search.Algorithms() {
			res, err := search.Search(alg, g, terrain.Human, start, goal)
			require.NoError(t, err)
			results[alg] = res
		}

		astar := results[search.AStar]
		for _, alg := range []search.Algorithm{search.DFS, search.IterativeDFS, search.BFS} {
			require.Equal(t, astar.Found, results[alg].Found, "trial %d: %s disagrees on reachability", trial, alg)
			if astar.Found {
				assert.LessOrEqual(t, astar.Cost, results[alg].Cost, "trial %d: A* beaten by %s", trial, alg)
			}
		}
	}
}

// TestProperties_UniformCosts: with one cost everywhere BFS is optimal, so it
// matches A* and never loses to DFS.
func TestProperties_UniformCosts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 40; trial++ {
		g := randomGrid(t, rng, 4+rng.Intn(6), 4+rng.Intn(6), "1222")
		start, goal := pt(0, 0), pt(g.Rows()-1, g.Cols()-1)

		bfs, err := search.Search(search.BFS, g, terrain.Human, start, goal)
		require.NoError(t, err)
		dfs, err := search.Search(search.DFS, g, terrain.Human, start, goal)
		require.NoError(t, err)
		astar, err := search.Search(search.AStar, g, terrain.Human, start, goal)
		require.NoError(t, err)

		if !bfs.Found {
			assert.False(t, dfs.Found)
			continue
		}
		assert.Equal(t, astar.Cost, bfs.Cost, "trial %d", trial)
		assert.LessOrEqual(t, bfs.Cost, dfs.Cost, "trial %d", trial)
		assert.GreaterOrEqual(t, bfs.Cost, grid.Manhattan(start, goal))
	}
}

// TestProperties_DFSVariantsAgree: the recursive and explicit-stack DFS build
// identical trees for every order.
func TestProperties_DFSVariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		g := randomGrid(t, rng, 3+rng.Intn(8), 3+rng.Intn(8), "12345")
		start, goal := pt(0, 0), pt(g.Rows()-1, g.Cols()-1)
		for _, s := range orders {
			order, err := grid.ParseOrder(s)
			require.NoError(t, err)

			rec, err := search.Search(search.DFS, g, terrain.Monkey, start, goal, search.WithOrder(order...))
			require.NoError(t, err)
			it, err := search.Search(search.IterativeDFS, g, terrain.Monkey, start, goal, search.WithOrder(order...))
			require.NoError(t, err)

			assert.Equal(t, rec.Found, it.Found)
			assert.Equal(t, rec.Cost, it.Cost)
			assert.Equal(t, rec.Expanded, it.Expanded)
			assert.Equal(t, rec.Tree, it.Tree, "trial %d order %s", trial, s)
		}
	}
}

// TestProperties_Deterministic: repeating a search reproduces the same tree.
func TestProperties_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	g := randomGrid(t, rng, 9, 9, "122345")
	for _, alg := range search.Algorithms() {
		a, err := search.Search(alg, g, terrain.Octopus, pt(0, 0), pt(8, 8))
		require.NoError(t, err)
		b, err := search.Search(alg, g, terrain.Octopus, pt(0, 0), pt(8, 8))
		require.NoError(t, err)
		assert.Equal(t, a, b, alg.String())
	}
}
