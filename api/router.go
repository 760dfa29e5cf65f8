package api

import (
	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"

	"github.com/hecarrillo/ai-maze/terrain"
)

// Config holds the HTTP surface settings.
type Config struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin.
	AllowOrigin string

	// BrotliLevel is the compression level for "br" responses (0..11).
	BrotliLevel int

	// Logging enables gin's request logger.
	Logging bool

	// Costs is the movement-cost table every request is served with.
	Costs *terrain.Costs
}

// DefaultConfig returns Config with:
//   - any origin
//   - brotli.DefaultCompression
//   - request logging on
//   - terrain.DefaultCosts()
func DefaultConfig() Config {
	return Config{
		AllowOrigin: "*",
		BrotliLevel: brotli.DefaultCompression,
		Logging:     true,
		Costs:       terrain.DefaultCosts(),
	}
}

// NewRouter wires the handlers:
//
//	GET  /api/terrains  roster, terrain costs, waypoints, shapes, algorithms
//	POST /api/search    one search with its full decision tree
//	POST /api/plan      route tables, shape costs and the best assignment
func NewRouter(cfg Config) *gin.Engine {
	if cfg.Costs == nil {
		cfg.Costs = terrain.DefaultCosts()
	}
	h := &handler{costs: cfg.Costs}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Logging {
		router.Use(gin.Logger())
	}
	router.Use(CORSMiddleware(cfg.AllowOrigin))
	router.Use(BrotliMiddleware(cfg.BrotliLevel))

	api := router.Group("/api")
	api.GET("/terrains", h.terrains)
	api.POST("/search", h.search)
	api.POST("/plan", h.plan)

	return router
}
