package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// jobInsights handles GET /job-insights. The research step is an external
// collaborator; without a configured LLM the endpoint is unavailable rather
// than the whole service failing to start.
func (s *Server) jobInsights(c *gin.Context) {
	if s.insighter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "insights service not configured"})
		return
	}

	position := strings.TrimSpace(c.Query("position"))
	if position == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "position parameter is required"})
		return
	}

	remote, err := parseToggle(c.Query("remote"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid remote parameter: " + err.Error()})
		return
	}

	insights, err := s.insighter.Insights(
		c.Request.Context(),
		position,
		c.QueryArray("company"),
		c.Query("years_experience"),
		remote,
	)
	if err != nil {
		s.log.Error().Err(err).Msg("insights research failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insights)
}
