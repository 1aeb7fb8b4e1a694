package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats returns three independent approximate counts. Estimated
// counts read collection metadata, so they can lag behind recent writes.
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.Store.Users.EstimatedCount(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}
	enrollments, err := h.Store.Enrollments.EstimatedCount(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count enrollments"})
		return
	}
	assignments, err := h.Store.Assignments.EstimatedCount(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count assignments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"enrollments": enrollments,
		"assignments": assignments,
	})
}
