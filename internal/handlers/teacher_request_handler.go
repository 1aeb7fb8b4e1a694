package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillup-platform/skillup-api/internal/models"
)

func (h *Handler) ListTeacherRequests(c *gin.Context) {
	reqs, err := h.Store.TeacherRequests.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve teacher requests"})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *Handler) ListTeacherRequestsByEmail(c *gin.Context) {
	reqs, err := h.Store.TeacherRequests.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve teacher requests"})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *Handler) CreateTeacherRequest(c *gin.Context) {
	var req models.TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Store.TeacherRequests.Insert(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create teacher request"})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) SetTeacherRequestStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Store.TeacherRequests.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update teacher request"})
		return
	}

	c.JSON(http.StatusOK, res)
}
