package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hecarrillo/ai-maze/assign"
	"github.com/hecarrillo/ai-maze/route"
	"github.com/hecarrillo/ai-maze/search"
	"github.com/hecarrillo/ai-maze/terrain"
)

type handler struct {
	costs *terrain.Costs
}

// badRequest logs and answers 400 {"error": ...}.
func badRequest(c *gin.Context, err error) {
	log.Printf("[WARN] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// algorithm parses name, defaulting to A* when empty.
func algorithm(name string) (search.Algorithm, error) {
	if name == "" {
		return search.AStar, nil
	}
	return search.ParseAlgorithm(name)
}

func (h *handler) terrains(c *gin.Context) {
	c.JSON(http.StatusOK, terrainsResponse(h.costs))
}

func (h *handler) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	g, err := req.build()
	if err != nil {
		badRequest(c, err)
		return
	}
	order, err := req.order()
	if err != nil {
		badRequest(c, err)
		return
	}
	alg, err := algorithm(req.Algorithm)
	if err != nil {
		badRequest(c, err)
		return
	}
	agent, err := terrain.ParseAgent(req.Agent)
	if err != nil {
		badRequest(c, err)
		return
	}

	log.Printf("[INFO] search: %v for %v from %v to %v on %dx%d", alg, agent, req.Start.point(), req.Goal.point(), g.Rows(), g.Cols())
	start := time.Now()
	res, err := search.Search(alg, g, agent, req.Start.point(), req.Goal.point(),
		search.WithOrder(order...),
		search.WithCosts(h.costs),
		search.WithAnnotate(),
	)
	if err != nil {
		badRequest(c, err)
		return
	}
	log.Printf("[INFO] search: found=%t cost=%d expanded=%d in %v", res.Found, res.Cost, res.Expanded, time.Since(start))

	c.JSON(http.StatusOK, toSearchResponse(res, g))
}

func (h *handler) plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	g, err := req.build()
	if err != nil {
		badRequest(c, err)
		return
	}
	order, err := req.order()
	if err != nil {
		badRequest(c, err)
		return
	}
	alg, err := algorithm(req.Algorithm)
	if err != nil {
		badRequest(c, err)
		return
	}

	agents := [2]terrain.Agent{terrain.Human, terrain.Octopus}
	switch len(req.Agents) {
	case 0:
	case 2:
		for i, name := range req.Agents {
			if agents[i], err = terrain.ParseAgent(name); err != nil {
				badRequest(c, err)
				return
			}
		}
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "agents must name exactly two roster entries"})
		return
	}

	log.Printf("[INFO] plan: %v and %v on %dx%d with %v", agents[0], agents[1], g.Rows(), g.Cols(), alg)
	start := time.Now()
	rep, err := assign.Plan(g, agents, assign.WithRouteOptions(
		route.WithAlgorithm(alg),
		route.WithOrder(order...),
		route.WithCosts(h.costs),
	))
	if err != nil {
		badRequest(c, err)
		return
	}
	if rep.Assignment == nil {
		log.Printf("[INFO] plan: no covering assignment (%v)", time.Since(start))
	} else {
		log.Printf("[INFO] plan: %v (%v)", rep.Assignment, time.Since(start))
	}

	c.JSON(http.StatusOK, toPlanResponse(rep))
}
