// Package api exposes the aggregation pipeline and the persistence
// collaborator over HTTP.
package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobscout-in/jobscout/internal/aggregate"
	"github.com/jobscout-in/jobscout/internal/config"
	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/jobscout-in/jobscout/internal/provider"
	"github.com/jobscout-in/jobscout/internal/store"
	"github.com/rs/zerolog"
)

// Gatherer runs one aggregation request. Failures describe degraded sources;
// they never make the request itself fail.
type Gatherer interface {
	Gather(ctx context.Context, req aggregate.Request) ([]models.Posting, []aggregate.Failure)
}

// Insighter researches skills for a role. Nil when no LLM is configured.
type Insighter interface {
	Insights(ctx context.Context, position string, companies []string, yearsExperience string, remote bool) (models.JobInsights, error)
}

type Server struct {
	agg            Gatherer
	store          store.Store
	insighter      Insighter
	cfg            config.Config
	defaultTargets []provider.WorkdayTarget
	log            zerolog.Logger
}

func NewServer(agg Gatherer, st store.Store, insighter Insighter, cfg config.Config, logger zerolog.Logger) (*Server, error) {
	targets, err := provider.ParseTargets(cfg.WorkdayTargets)
	if err != nil {
		return nil, fmt.Errorf("api: configured workday targets: %w", err)
	}
	return &Server{
		agg:            agg,
		store:          st,
		insighter:      insighter,
		cfg:            cfg,
		defaultTargets: targets,
		log:            logger.With().Str("component", "api").Logger(),
	}, nil
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.health)
	router.GET("/jobs", s.jobs)
	router.GET("/job-insights", s.jobInsights)

	router.POST("/save-job", s.saveJob)
	router.GET("/saved-jobs", s.savedJobs)
	router.DELETE("/delete-jobs/:id", s.deleteJob)

	router.POST("/save-insight", s.saveInsight)
	router.GET("/saved-insights", s.savedInsights)
	router.DELETE("/delete-insights/:id", s.deleteInsight)

	router.GET("/openapi.yaml", s.openapiYAML)
	router.GET("/openapi.json", s.openapiJSON)
	router.GET("/docs", s.docs)

	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// parseToggle rejects non-boolean toggle values instead of silently ignoring
// them.
func parseToggle(value string, fallback bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return fallback, nil
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", value)
	}
}
