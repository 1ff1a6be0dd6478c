// Command fes-server is a thin Gin HTTP front-end over internal/evaluate,
// per spec.md §1's "CLI/HTTP out of core scope, named boundary interfaces
// only" rule. Grounded on the teacher's cmd/server + internal/http, now
// calling into internal/evaluate/internal/atlasio instead of the teacher's
// flat internal/domain+internal/usecase prediction loop.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ngs-tides/tidekit/internal/atlasio"
	"github.com/ngs-tides/tidekit/internal/evaluate"
	"github.com/ngs-tides/tidekit/internal/settings"
)

type server struct {
	atlas evaluate.Atlas
	cfg   settings.Settings
}

type predictRequest struct {
	Epochs []float64 `json:"epochs" binding:"required"`
	Lons   []float64 `json:"lons" binding:"required"`
	Lats   []float64 `json:"lats" binding:"required"`
}

type predictResponse struct {
	Tide    []float64 `json:"tide"`
	LPTide  []float64 `json:"lp_tide"`
	Quality []int8    `json:"quality"`
}

func (s *server) predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := evaluate.EvaluateTide(s.atlas, req.Epochs, req.Lons, req.Lats, s.cfg)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, predictResponse{Tide: result.Tide, LPTide: result.LPTide, Quality: result.Quality})
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func newRouter(s *server) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", s.health)
	r.POST("/v1/predict", s.predict)

	return r
}

func main() {
	dataDir := os.Getenv("FES_DATA_DIR")
	if dataDir == "" {
		dataDir = "data/fes"
	}

	model, err := atlasio.LoadCartesianDirectory(dataDir, atlasio.DefaultConfig())
	if err != nil {
		log.Fatalf("fes-server: failed to load atlas from %s: %v", dataDir, err)
	}

	s := &server{
		atlas: evaluate.FromCartesian(model),
		cfg:   settings.Fes(),
	}

	addr := os.Getenv("FES_SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := newRouter(s)
	log.Printf("fes-server: listening on %s (atlas: %s)", addr, dataDir)
	if err := r.Run(addr); err != nil {
		log.Fatalf("fes-server: %v", err)
	}
}
