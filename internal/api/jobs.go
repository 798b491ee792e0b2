package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jobscout-in/jobscout/internal/aggregate"
	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/jobscout-in/jobscout/internal/provider"
)

// jobs handles GET /jobs. Query params:
//
//	q=Full%20Stack            keyword(s), any-token match
//	city=Bengaluru            optional city narrowing for the amazon source
//	location=India            generic location substring filter
//	strict=true|false         best-effort schema enforcement (default true)
//	include_amazon=true|false
//	include_netflix=true|false
//	workday=host:site:hint,...  tenant overrides
func (s *Server) jobs(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		query = s.cfg.DefaultQuery
	}

	strict, err := parseToggle(c.Query("strict"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid strict parameter: " + err.Error()})
		return
	}
	includeAmazon, err := parseToggle(c.Query("include_amazon"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid include_amazon parameter: " + err.Error()})
		return
	}
	includeNetflix, err := parseToggle(c.Query("include_netflix"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid include_netflix parameter: " + err.Error()})
		return
	}

	targets := s.defaultTargets
	if raw := strings.TrimSpace(c.Query("workday")); raw != "" {
		targets, err = provider.ParseTargets(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	postings, failures := s.agg.Gather(c.Request.Context(), aggregate.Request{
		Query:          query,
		City:           c.Query("city"),
		Location:       c.Query("location"),
		IncludeAmazon:  includeAmazon,
		IncludeNetflix: includeNetflix,
		Strict:         strict,
		Targets:        targets,
	})

	s.log.Info().
		Int("postings", len(postings)).
		Int("degraded_sources", len(failures)).
		Str("q", query).
		Msg("jobs request served")

	if postings == nil {
		postings = []models.Posting{}
	}
	c.JSON(http.StatusOK, postings)
}
