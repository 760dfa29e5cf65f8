package api

import (
	"fmt"
	"strings"

	"github.com/hecarrillo/ai-maze/assign"
	"github.com/hecarrillo/ai-maze/grid"
	"github.com/hecarrillo/ai-maze/route"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

// PointJSON is a grid coordinate on the wire.
type PointJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p PointJSON) point() grid.Point { return grid.Point{Row: p.Row, Col: p.Col} }

func toPointJSON(p grid.Point) PointJSON { return PointJSON{Row: p.Row, Col: p.Col} }

func toPathJSON(ps []grid.Point) []PointJSON {
	out := make([]PointJSON, len(ps))
	for i, p := range ps {
		out[i] = toPointJSON(p)
	}
	return out
}

// MapJSON is the part shared by every request that carries a map:
// digit rows plus markers keyed by symbol ("H", "K") or name ("Portal Key").
type MapJSON struct {
	Map     []string             `json:"map" binding:"required"`
	Markers map[string]PointJSON `json:"markers"`
	Order   string               `json:"order"`
}

// build parses the digit rows and places the markers.
func (m MapJSON) build() (*grid.Grid, error) {
	g, err := grid.FromDigits(m.Map)
	if err != nil {
		return nil, err
	}
	for key, p := range m.Markers {
		mk, err := grid.ParseMarker(key)
		if err != nil {
			return nil, err
		}
		if err := g.SetMarker(p.point(), mk); err != nil {
			return nil, fmt.Errorf("marker %s: %w", key, err)
		}
	}
	return g, nil
}

// order returns the requested direction order, or the default when unset.
func (m MapJSON) order() ([]grid.Direction, error) {
	if m.Order == "" {
		return grid.DefaultOrder(), nil
	}
	return grid.ParseOrder(m.Order)
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	MapJSON
	Algorithm string     `json:"algorithm"`
	Agent     string     `json:"agent" binding:"required"`
	Start     *PointJSON `json:"start" binding:"required"`
	Goal      *PointJSON `json:"goal" binding:"required"`
}

// NodeJSON is one decision-tree node, flattened with its parent index.
type NodeJSON struct {
	ID       int    `json:"id"`
	Parent   int    `json:"parent"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Dir      string `json:"dir"`
	G        int    `json:"g"`
	F        int    `json:"f"`
	Actions  string `json:"actions"`
	Executed string `json:"executed"`
	Note     string `json:"note,omitempty"`
}

// SearchResponse is the body answered by POST /api/search.
type SearchResponse struct {
	Algorithm string      `json:"algorithm"`
	Found     bool        `json:"found"`
	Cost      int         `json:"cost"`
	Expanded  int         `json:"expanded"`
	Path      []PointJSON `json:"path"`
	Nodes     []NodeJSON  `json:"nodes"`
	Grid      []string    `json:"grid"`
}

func toSearchResponse(res *search.Result, g *grid.Grid) SearchResponse {
	out := SearchResponse{
		Algorithm: res.Algorithm.String(),
		Found:     res.Found,
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Path:      toPathJSON(res.Path()),
		Nodes:     make([]NodeJSON, 0, res.Tree.Len()),
		Grid:      rows(g),
	}
	res.Tree.Walk(func(i, _ int) bool {
		n := res.Tree.Node(i)
		out.Nodes = append(out.Nodes, NodeJSON{
			ID:       i,
			Parent:   n.Parent,
			Row:      n.Pos.Row,
			Col:      n.Pos.Col,
			Dir:      string(n.Dir.Letter()),
			G:        n.G,
			F:        n.F,
			Actions:  grid.FormatOrder(n.Actions),
			Executed: grid.FormatOrder(n.Executed),
			Note:     n.Annotation(),
		})
		return true
	})
	return out
}

// rows renders g one string per row.
func rows(g *grid.Grid) []string {
	return strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
}

// PlanRequest is the body of POST /api/plan.
type PlanRequest struct {
	MapJSON
	Algorithm string   `json:"algorithm"`
	Agents    []string `json:"agents"`
}

// RouteJSON is one pairwise route cost.
type RouteJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
	Cost int    `json:"cost"`
}

// TableJSON is the route table of one agent.
type TableJSON struct {
	Agent     string      `json:"agent"`
	Routes    []RouteJSON `json:"routes"`
	Symmetric bool        `json:"symmetric"`
}

// ShapeCostJSON is the cost of one shape.
type ShapeCostJSON struct {
	Shape string `json:"shape"`
	Cost  int    `json:"cost"`
}

// CandidatesJSON lists the shape costs of one agent.
type CandidatesJSON struct {
	Agent  string          `json:"agent"`
	Shapes []ShapeCostJSON `json:"shapes"`
}

// LegJSON is one agent's part of the assignment.
type LegJSON struct {
	Agent string `json:"agent"`
	Shape string `json:"shape"`
	Cost  int    `json:"cost"`
}

// AssignmentJSON is the chosen pair of legs.
type AssignmentJSON struct {
	Legs  []LegJSON `json:"legs"`
	Total int       `json:"total"`
}

// SegmentJSON is one walked segment with its cells.
type SegmentJSON struct {
	From string      `json:"from"`
	To   string      `json:"to"`
	Cost int         `json:"cost"`
	Path []PointJSON `json:"path"`
}

// TraceJSON is the concrete walk of one leg.
type TraceJSON struct {
	Agent    string        `json:"agent"`
	Shape    string        `json:"shape"`
	Segments []SegmentJSON `json:"segments"`
}

// PlanResponse is the body answered by POST /api/plan.
type PlanResponse struct {
	Tables     []TableJSON      `json:"tables"`
	Candidates []CandidatesJSON `json:"candidates"`
	Assignment *AssignmentJSON  `json:"assignment"`
	Traces     []TraceJSON      `json:"traces"`
}

func toPlanResponse(rep *assign.Report) PlanResponse {
	out := PlanResponse{Traces: []TraceJSON{}}
	for _, t := range rep.Tables {
		tj := TableJSON{Agent: t.Agent.String(), Symmetric: t.Symmetric()}
		for _, r := range t.Routes {
			tj.Routes = append(tj.Routes, RouteJSON{From: r.From.String(), To: r.To.String(), Cost: r.Cost})
		}
		out.Tables = append(out.Tables, tj)
	}
	for _, c := range rep.Candidates {
		cj := CandidatesJSON{Agent: c.Agent.String()}
		for _, s := range c.Shapes {
			cj.Shapes = append(cj.Shapes, ShapeCostJSON{Shape: string(s.Shape), Cost: s.Cost})
		}
		out.Candidates = append(out.Candidates, cj)
	}
	if a := rep.Assignment; a != nil {
		aj := &AssignmentJSON{Total: a.Total}
		for _, l := range a.Legs {
			aj.Legs = append(aj.Legs, LegJSON{Agent: l.Agent.String(), Shape: string(l.Shape), Cost: l.Cost})
		}
		out.Assignment = aj
	}
	for _, lt := range rep.Traces {
		tj := TraceJSON{Agent: lt.Leg.Agent.String(), Shape: string(lt.Leg.Shape)}
		for _, s := range lt.Segments {
			path := make([]grid.Point, len(s.Steps))
			for i, st := range s.Steps {
				path[i] = st.Point
			}
			tj.Segments = append(tj.Segments, SegmentJSON{
				From: s.Pair.From.String(),
				To:   s.Pair.To.String(),
				Cost: s.Cost,
				Path: toPathJSON(path),
			})
		}
		out.Traces = append(out.Traces, tj)
	}
	return out
}

// AgentJSON is one roster entry with its cost per terrain name.
type AgentJSON struct {
	Name  string         `json:"name"`
	Costs map[string]int `json:"costs"`
}

// TerrainsResponse is the body answered by GET /api/terrains.
type TerrainsResponse struct {
	Terrains   []string    `json:"terrains"`
	Agents     []AgentJSON `json:"agents"`
	Impassable int         `json:"impassable"`
	Waypoints  []string    `json:"waypoints"`
	Shapes     []string    `json:"shapes"`
	Algorithms []string    `json:"algorithms"`
}

func terrainsResponse(costs *terrain.Costs) TerrainsResponse {
	out := TerrainsResponse{Impassable: terrain.Impassable}
	for _, t := range terrain.Terrains() {
		out.Terrains = append(out.Terrains, t.String())
	}
	for _, a := range terrain.Agents() {
		aj := AgentJSON{Name: a.String(), Costs: make(map[string]int)}
		for _, t := range terrain.Terrains() {
			aj.Costs[t.String()] = costs.Cost(a, t)
		}
		out.Agents = append(out.Agents, aj)
	}
	for _, w := range route.Alphabet() {
		out.Waypoints = append(out.Waypoints, w.String())
	}
	for _, s := range route.Shapes() {
		out.Shapes = append(out.Shapes, string(s))
	}
	for _, a := range search.Algorithms() {
		out.Algorithms = append(out.Algorithms, a.String())
	}
	return out
}
