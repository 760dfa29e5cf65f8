// Command mazeplan loads a digit map, places the waypoints and prints the
// route tables, shape costs and best assignment for the Human and the
// Octopus. With -serve it runs the HTTP API instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hecarrillo/ai-maze/api"
	"github.com/hecarrillo/ai-maze/assign"
	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/route"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

// pointFlag parses "row,col".
type pointFlag struct {
	p   grid.Point
	set bool
}

func (f *pointFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.p.Row, f.p.Col)
}

func (f *pointFlag) Set(s string) error {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	f.p = grid.Point{Row: row, Col: col}
	f.set = true
	return nil
}

func main() {
	var (
		mapFile   = flag.String("map", "", "digit map file, one row per line")
		order     = flag.String("order", "RDLU", "direction order, a permutation of U R D L")
		algorithm = flag.String("algorithm", "astar", "pairwise search: dfs, iterative-dfs, bfs, astar")
		agents    = flag.String("agents", "Human,Octopus", "the two planned agents")
		serve     = flag.String("serve", "", "run the HTTP API on this address (default :$PORT)")
		origin    = flag.String("origin", "*", "Access-Control-Allow-Origin for -serve")
	)
	marks := []struct {
		name   string
		marker grid.Marker
		flag   pointFlag
	}{
		{name: "human", marker: grid.HumanStart},
		{name: "octopus", marker: grid.OctopusStart},
		{name: "temple", marker: grid.DarkTemple},
		{name: "key", marker: grid.PortalKey},
		{name: "portal", marker: grid.Portal},
	}
	for i := range marks {
		flag.Var(&marks[i].flag, marks[i].name, marks[i].marker.String()+" cell as row,col")
	}
	flag.Parse()

	addr := *serve
	if addr == "" && *mapFile == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
	}
	if addr != "" {
		cfg := api.DefaultConfig()
		cfg.AllowOrigin = *origin
		log.Printf("[INFO] serving on %s\n", addr)
		if err := api.NewRouter(cfg).Run(addr); err != nil {
			log.Fatalf("[FATAL] server: %v\n", err)
		}
		return
	}

	if *mapFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	f, err := os.Open(*mapFile)
	if err != nil {
		log.Fatalf("[FATAL] %v\n", err)
	}
	g, err := grid.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("[FATAL] %s: %v\n", *mapFile, err)
	}
	for _, m := range marks {
		if !m.flag.set {
			continue
		}
		if err := g.SetMarker(m.flag.p, m.marker); err != nil {
			log.Fatalf("[FATAL] -%s: %v\n", m.name, err)
		}
	}
	log.Printf("[INFO] loaded %s: %dx%d\n", *mapFile, g.Rows(), g.Cols())

	dirs, err := grid.ParseOrder(*order)
	if err != nil {
		log.Fatalf("[FATAL] -order: %v\n", err)
	}
	alg, err := search.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatalf("[FATAL] -algorithm: %v\n", err)
	}
	pair, err := parseAgents(*agents)
	if err != nil {
		log.Fatalf("[FATAL] -agents: %v\n", err)
	}

	rep, err := assign.Plan(g, pair, assign.WithRouteOptions(
		route.WithAlgorithm(alg),
		route.WithOrder(dirs...),
	))
	if err != nil {
		log.Fatalf("[FATAL] plan: %v\n", err)
	}

	fmt.Print(g)
	fmt.Println()
	if _, err := rep.WriteTo(os.Stdout); err != nil {
		log.Fatalf("[FATAL] %v\n", err)
	}
}

// parseAgents reads two comma-separated roster names.
func parseAgents(s string) ([2]terrain.Agent, error) {
	var out [2]terrain.Agent
	names := strings.Split(s, ",")
	if len(names) != 2 {
		return out, fmt.Errorf("want two agents, got %q", s)
	}
	for i, n := range names {
		a, err := terrain.ParseAgent(strings.TrimSpace(n))
		if err != nil {
			return out, err
		}
		out[i] = a
	}
	return out, nil
}
