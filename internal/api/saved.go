package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/jobscout-in/jobscout/internal/store"
)

func (s *Server) saveJob(c *gin.Context) {
	var posting models.Posting
	if err := c.ShouldBindJSON(&posting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid posting: " + err.Error()})
		return
	}

	id, err := s.store.SaveJob(c.Request.Context(), posting)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job saved successfully!", "_id": id})
}

func (s *Server) savedJobs(c *gin.Context) {
	jobs, err := s.store.ListJobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs: " + err.Error()})
		return
	}
	if jobs == nil {
		jobs = []store.SavedJob{}
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) deleteJob(c *gin.Context) {
	count, err := s.store.DeleteJob(c.Request.Context(), c.Param("id"))
	s.deleteResponse(c, count, err, "Job")
}

func (s *Server) saveInsight(c *gin.Context) {
	var insight models.JobInsights
	if err := c.ShouldBindJSON(&insight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid insight: " + err.Error()})
		return
	}

	id, err := s.store.SaveInsight(c.Request.Context(), insight)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save insight: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Insight saved successfully!", "_id": id})
}

func (s *Server) savedInsights(c *gin.Context) {
	insights, err := s.store.ListInsights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list insights: " + err.Error()})
		return
	}
	if insights == nil {
		insights = []store.SavedInsight{}
	}
	c.JSON(http.StatusOK, insights)
}

func (s *Server) deleteInsight(c *gin.Context) {
	count, err := s.store.DeleteInsight(c.Request.Context(), c.Param("id"))
	s.deleteResponse(c, count, err, "Insight")
}

func (s *Server) deleteResponse(c *gin.Context, count int64, err error, kind string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + kind + " ID"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"deleted_count": count})
	}
}
