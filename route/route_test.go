package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/route"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

func pt(r, c int) grid.Point { return grid.Point{Row: r, Col: c} }

// placed builds a grid from digits and sets the given markers.
func placed(t *testing.T, lines []string, marks map[grid.Marker]grid.Point) *grid.Grid {
	t.Helper()
	g, err := grid.FromDigits(lines)
	require.NoError(t, err)
	for m, p := range marks {
		require.NoError(t, g.SetMarker(p, m))
	}
	return g
}

// openMap is a 4×4 Land square; Human costs equal Manhattan distances.
func openMap(t *testing.T) *grid.Grid {
	return placed(t, []string{"2222", "2222", "2222", "2222"}, map[grid.Marker]grid.Point{
		grid.HumanStart:   pt(0, 0),
		grid.OctopusStart: pt(0, 3),
		grid.DarkTemple:   pt(3, 0),
		grid.PortalKey:    pt(1, 1),
		grid.Portal:       pt(3, 3),
	})
}

//----------------------------------------------------------------------------//
// Waypoints, pairs, shapes
//----------------------------------------------------------------------------//

func TestPairs(t *testing.T) {
	pairs := route.Pairs(route.Alphabet())
	require.Len(t, pairs, 12)
	assert.Equal(t, route.Pair{From: route.Initial, To: route.DarkTemple}, pairs[0])
	assert.Equal(t, route.Pair{From: route.Portal, To: route.PortalKey}, pairs[11])

	seen := map[route.Pair]bool{}
	for _, p := range pairs {
		assert.NotEqual(t, p.From, p.To)
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
	}

	assert.Len(t, route.Pairs([]route.Waypoint{route.Initial, route.Portal, route.Initial}), 2)
	assert.Empty(t, route.Pairs([]route.Waypoint{route.Initial}))
}

func TestWaypoint_Marker(t *testing.T) {
	m, err := route.Initial.Marker(terrain.Human)
	require.NoError(t, err)
	assert.Equal(t, grid.HumanStart, m)

	m, err = route.Initial.Marker(terrain.Octopus)
	require.NoError(t, err)
	assert.Equal(t, grid.OctopusStart, m)

	_, err = route.Initial.Marker(terrain.Sasquatch)
	assert.ErrorIs(t, err, route.ErrNoStartRole)

	m, err = route.PortalKey.Marker(terrain.Monkey)
	require.NoError(t, err)
	assert.Equal(t, grid.PortalKey, m)

	_, err = route.Waypoint('X').Marker(terrain.Human)
	assert.ErrorIs(t, err, route.ErrUnknownWaypoint)

	w, err := route.ParseWaypoint("D")
	require.NoError(t, err)
	assert.Equal(t, route.DarkTemple, w)
	_, err = route.ParseWaypoint("DK")
	assert.ErrorIs(t, err, route.ErrUnknownWaypoint)
}

func TestShape(t *testing.T) {
	for _, s := range route.Shapes() {
		assert.NoError(t, s.Validate(), string(s))
	}

	bad := []route.Shape{"", "I", "PI", "IKK", "IXP", "IPP", "KIP"}
	for _, s := range bad {
		assert.ErrorIs(t, s.Validate(), route.ErrBadShape, string(s))
	}

	s := route.Shape("IKDP")
	assert.Equal(t, []route.Waypoint{route.Initial, route.PortalKey, route.DarkTemple, route.Portal}, s.Waypoints())
	assert.Equal(t, []route.Pair{
		{From: route.Initial, To: route.PortalKey},
		{From: route.PortalKey, To: route.DarkTemple},
		{From: route.DarkTemple, To: route.Portal},
	}, s.Segments())
	assert.True(t, s.Contains(route.DarkTemple))
	assert.False(t, route.Shape("IKP").Contains(route.DarkTemple))
}

//----------------------------------------------------------------------------//
// Catalog
//----------------------------------------------------------------------------//

func TestNewCatalog_Errors(t *testing.T) {
	g := openMap(t)

	_, err := route.NewCatalog(nil)
	assert.ErrorIs(t, err, route.ErrNilGrid)

	_, err = route.NewCatalog(g, route.WithOrder(grid.Up))
	assert.ErrorIs(t, err, grid.ErrBadOrder)

	_, err = route.NewCatalog(g, route.WithCosts(nil))
	assert.ErrorIs(t, err, search.ErrNilCosts)

	_, err = route.NewCatalog(g, route.WithCosts(&terrain.Costs{}))
	assert.ErrorIs(t, err, terrain.ErrBadCost)

	_, err = route.NewCatalog(g, route.WithAlphabet(route.Initial, route.Waypoint('Z')))
	assert.ErrorIs(t, err, route.ErrUnknownWaypoint)

	_, err = route.NewCatalog(g, route.WithStart(terrain.Monkey, pt(9, 9)))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = route.NewCatalog(g, route.WithStart(terrain.Agent(7), pt(0, 0)))
	assert.ErrorIs(t, err, terrain.ErrUnknownAgent)
}

func TestCatalog_PairwiseCost(t *testing.T) {
	c, err := route.NewCatalog(openMap(t))
	require.NoError(t, err)

	cases := []struct {
		from, to route.Waypoint
		want     int
	}{
		{route.Initial, route.DarkTemple, 3},
		{route.Initial, route.PortalKey, 2},
		{route.Initial, route.Portal, 6},
		{route.PortalKey, route.Portal, 4},
		{route.DarkTemple, route.PortalKey, 3},
		{route.Portal, route.Initial, 6},
	}
	for _, tc := range cases {
		got, err := c.PairwiseCost(terrain.Human, tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v→%v", tc.from, tc.to)
	}

	// the Octopus pays 4 per Land cell and starts at (0,3)
	got, err := c.PairwiseCost(terrain.Octopus, route.Initial, route.Portal)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestCatalog_Locate(t *testing.T) {
	g := openMap(t)
	c, err := route.NewCatalog(g, route.WithStart(terrain.Sasquatch, pt(2, 2)))
	require.NoError(t, err)

	p, err := c.Locate(terrain.Octopus, route.Initial)
	require.NoError(t, err)
	assert.Equal(t, pt(0, 3), p)

	p, err = c.Locate(terrain.Sasquatch, route.Initial)
	require.NoError(t, err)
	assert.Equal(t, pt(2, 2), p)

	_, err = c.Locate(terrain.Monkey, route.Initial)
	assert.ErrorIs(t, err, route.ErrNoStartRole)

	cost, err := c.PairwiseCost(terrain.Sasquatch, route.Initial, route.Portal)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
}

func TestCatalog_WaypointMissing(t *testing.T) {
	g := placed(t, []string{"22", "22"}, map[grid.Marker]grid.Point{
		grid.HumanStart: pt(0, 0),
		grid.Portal:     pt(1, 1),
	})
	c, err := route.NewCatalog(g)
	require.NoError(t, err)

	cost, err := c.PairwiseCost(terrain.Human, route.Initial, route.Portal)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)

	_, err = c.PairwiseCost(terrain.Human, route.Initial, route.DarkTemple)
	assert.ErrorIs(t, err, route.ErrWaypointMissing)

	_, err = c.Table(terrain.Human)
	assert.ErrorIs(t, err, route.ErrWaypointMissing)

	narrow, err := route.NewCatalog(g, route.WithAlphabet(route.Initial, route.Portal))
	require.NoError(t, err)
	table, err := narrow.Table(terrain.Human)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestCatalog_Table(t *testing.T) {
	c, err := route.NewCatalog(openMap(t))
	require.NoError(t, err)

	table, err := c.Table(terrain.Human)
	require.NoError(t, err)
	assert.Equal(t, terrain.Human, table.Agent)
	require.Equal(t, 12, table.Len())
	for i, p := range route.Pairs(route.Alphabet()) {
		assert.Equal(t, p, table.Routes[i].Pair())
	}

	cost, ok := table.Cost(route.PortalKey, route.DarkTemple)
	require.True(t, ok)
	assert.Equal(t, 3, cost)
	_, ok = table.Cost(route.Portal, route.Portal)
	assert.False(t, ok)

	assert.True(t, table.Symmetric())
	assert.Empty(t, table.Asymmetries())
}

// TestCatalog_Asymmetric: entering a cell costs its terrain, so a Land start
// and a Water portal yield different costs each way.
func TestCatalog_Asymmetric(t *testing.T) {
	g := placed(t, []string{"23"}, map[grid.Marker]grid.Point{
		grid.HumanStart: pt(0, 0),
		grid.Portal:     pt(0, 1),
	})
	c, err := route.NewCatalog(g, route.WithAlphabet(route.Initial, route.Portal))
	require.NoError(t, err)
	table, err := c.Table(terrain.Human)
	require.NoError(t, err)

	ip, _ := table.Cost(route.Initial, route.Portal)
	pi, _ := table.Cost(route.Portal, route.Initial)
	assert.Equal(t, 2, ip)
	assert.Equal(t, 1, pi)
	assert.False(t, table.Symmetric())
	assert.Equal(t, []route.Pair{{From: route.Initial, To: route.Portal}}, table.Asymmetries())
}

// TestCatalog_UnreachableTemple: Sand around the Dark Temple stops the Octopus
// both ways, while the Human crosses it.
func TestCatalog_UnreachableTemple(t *testing.T) {
	g := placed(t, []string{
		"2222",
		"2222",
		"4222",
		"2422",
	}, map[grid.Marker]grid.Point{
		grid.HumanStart:   pt(0, 0),
		grid.OctopusStart: pt(0, 3),
		grid.DarkTemple:   pt(3, 0),
		grid.PortalKey:    pt(1, 2),
		grid.Portal:       pt(3, 3),
	})
	c, err := route.NewCatalog(g)
	require.NoError(t, err)

	oct, err := c.Table(terrain.Octopus)
	require.NoError(t, err)
	for _, r := range oct.Routes {
		if r.From == route.DarkTemple || r.To == route.DarkTemple {
			assert.Equal(t, -1, r.Cost, r.String())
		} else {
			assert.Positive(t, r.Cost, r.String())
		}
	}

	human, err := c.Table(terrain.Human)
	require.NoError(t, err)
	for _, r := range human.Routes {
		assert.Positive(t, r.Cost, r.String())
	}
}

func TestCatalog_Algorithm(t *testing.T) {
	g := placed(t, []string{"252", "222"}, map[grid.Marker]grid.Point{
		grid.HumanStart: pt(0, 0),
		grid.Portal:     pt(0, 2),
	})
	astar, err := route.NewCatalog(g)
	require.NoError(t, err)
	bfs, err := route.NewCatalog(g, route.WithAlgorithm(search.BFS))
	require.NoError(t, err)

	a, err := astar.PairwiseCost(terrain.Human, route.Initial, route.Portal)
	require.NoError(t, err)
	b, err := bfs.PairwiseCost(terrain.Human, route.Initial, route.Portal)
	require.NoError(t, err)
	assert.Equal(t, 4, a)
	assert.Equal(t, 5, b)

	res, err := astar.Find(terrain.Human, route.Initial, route.Portal)
	require.NoError(t, err)
	assert.Equal(t, search.AStar, res.Algorithm)
	assert.Len(t, res.Path(), 5)
}

func TestNewTable(t *testing.T) {
	table := route.NewTable(terrain.Human, []route.Route{
		{From: route.Initial, To: route.Portal, Cost: 3},
		{From: route.Initial, To: route.Portal, Cost: 5},
	})
	cost, ok := table.Cost(route.Initial, route.Portal)
	require.True(t, ok)
	assert.Equal(t, 5, cost)
	assert.True(t, table.Symmetric(), "a pair without its reverse is ignored")
	assert.Equal(t, "IP=3", table.Routes[0].String())
}
