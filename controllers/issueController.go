package controllers

import (
	"errors"
	"net/http"
	"time"

	"civicai-be/lifecycle"
	"civicai-be/mirror"
	"civicai-be/models"
	"civicai-be/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueController serves the operator dashboard: filtered listings,
// statistics and lifecycle transitions. Reads come from the sync engine's
// mirror, writes go through the lifecycle controller and come back via the
// change feed.
type IssueController struct {
	engine    *mirror.Engine
	lifecycle *lifecycle.Controller
}

// NewIssueController wires the dashboard dependencies.
func NewIssueController(engine *mirror.Engine, lc *lifecycle.Controller) *IssueController {
	return &IssueController{engine: engine, lifecycle: lc}
}

// ListIssues returns the mirror filtered by status/category/priority query
// params, each "all" (or absent) meaning no restriction.
func (ic *IssueController) ListIssues(c *gin.Context) {
	var filter models.FilterState
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issues := mirror.ApplyFilter(ic.engine.Snapshot(), filter)

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

// GetStatistics returns counts over the whole mirror, independent of any
// filter the operator has active.
func (ic *IssueController) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, mirror.ComputeStatistics(ic.engine.Snapshot()))
}

// RecentIssues returns the most recent issues for the map overview
func (ic *IssueController) RecentIssues(c *gin.Context) {
	const limit = 19

	issues := ic.engine.Snapshot()
	if len(issues) > limit {
		issues = issues[:limit]
	}

	type IssuePin struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Address   *string   `json:"address,omitempty"`
		Category  string    `json:"category"`
		CreatedAt time.Time `json:"createdAt"`
	}

	pins := make([]IssuePin, 0, len(issues))
	for _, issue := range issues {
		pins = append(pins, IssuePin{
			ID:        issue.ID.Hex(),
			Title:     issue.Title,
			Latitude:  issue.Latitude,
			Longitude: issue.Longitude,
			Address:   issue.Address,
			Category:  string(issue.Category),
			CreatedAt: issue.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, pins)
}

// UpdateStatus applies one lifecycle transition to an issue
func (ic *IssueController) UpdateStatus(c *gin.Context) {
	idParam := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status     string  `json:"status" binding:"required"`
		AssignedTo *string `json:"assignedTo,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := ic.lifecycle.SetStatus(c.Request.Context(), idParam, models.IssueStatus(input.Status), input.AssignedTo)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
