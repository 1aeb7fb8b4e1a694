package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillup-platform/skillup-api/internal/models"
)

func (h *Handler) ListEnrollmentsByCourse(c *gin.Context) {
	enrollments, err := h.Store.Enrollments.FindByCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve enrollments"})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func (h *Handler) ListEnrollmentsByStudent(c *gin.Context) {
	enrollments, err := h.Store.Enrollments.FindByStudent(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve enrollments"})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func (h *Handler) CreateEnrollment(c *gin.Context) {
	var enrollment models.Enrollment
	if err := c.ShouldBindJSON(&enrollment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Store.Enrollments.Insert(c.Request.Context(), enrollment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enrollment"})
		return
	}

	c.JSON(http.StatusOK, res)
}
