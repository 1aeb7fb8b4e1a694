package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillup-platform/skillup-api/internal/middleware"
	"github.com/skillup-platform/skillup-api/internal/models"
	"github.com/skillup-platform/skillup-api/internal/utils"
)

// IssueToken signs whatever claim payload the client sent. The frontend
// posts its signed-in user object here after authentication with the
// identity provider; the payload is trusted verbatim.
func (h *Handler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := utils.GenerateJWT(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.Users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns the user document or JSON null when the email is
// unknown; a miss is not a 404.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.Store.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// CheckAdmin is self-service only: the path email must match the claim
// email regardless of role.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	user, err := h.Store.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	isAdmin := user != nil && user.Role == models.RoleAdmin
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (h *Handler) CheckTeacher(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	user, err := h.Store.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	isTeacher := user != nil && user.Role == models.RoleTeacher
	c.JSON(http.StatusOK, gin.H{"teacher": isTeacher})
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

// RegisterUser creates a user on first sign-in. Duplicate registration is
// a business outcome, not an error: the existing-user response is a 200
// with a null insertedId. The existence check and the insert are not
// atomic; two concurrent registrations of the same email can both land.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Store.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Existing User", "insertedId": nil})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}
	res, err := h.Store.Users.Insert(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) SetUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Store.Users.SetRole(c.Request.Context(), c.Param("email"), req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, res)
}
