package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillup-platform/skillup-api/internal/models"
)

// ListAssignmentsByCourse returns the course's assignments newest first
// (publishDate descending).
func (h *Handler) ListAssignmentsByCourse(c *gin.Context) {
	assignments, err := h.Store.Assignments.FindByCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assignments"})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *Handler) CreateAssignment(c *gin.Context) {
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Store.Assignments.Insert(c.Request.Context(), assignment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// SetSubmissionCount is open to any authenticated caller, not just the
// owning teacher: students bump it when they submit.
func (h *Handler) SetSubmissionCount(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		SubmissionCount int64 `json:"submissionCount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Store.Assignments.SetSubmissionCount(c.Request.Context(), id, req.SubmissionCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment"})
		return
	}

	c.JSON(http.StatusOK, res)
}
