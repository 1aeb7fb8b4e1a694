package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillup-platform/skillup-api/internal/models"
)

func TestTeacherRequestFlow(t *testing.T) {
	r, s, _ := newTestEnv(t)
	seedUser(t, s, "admin@x.com", models.RoleAdmin)
	seedUser(t, s, "a@x.com", models.RoleStudent)

	// Any authenticated user may apply.
	w := doJSON(t, r, "POST", "/teacherRequests", bearerToken(t, "a@x.com"), gin.H{
		"name":       "A",
		"email":      "a@x.com",
		"title":      "Go instructor",
		"experience": "5 years",
		"category":   "programming",
		"status":     models.RequestPending,
	})
	require.Equal(t, http.StatusOK, w.Code)
	insertedID, _ := decodeBody(t, w)["insertedId"].(string)
	require.NotEmpty(t, insertedID)

	// Admin sees the full queue.
	w = doJSON(t, r, "GET", "/teacherRequests", bearerToken(t, "admin@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeList(t, w), 1)

	// Admin approves by id.
	w = doJSON(t, r, "PATCH", "/teacherRequests/"+insertedID, bearerToken(t, "admin@x.com"), gin.H{"status": models.RequestApproved})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["matchedCount"])

	// The requester sees the updated status.
	w = doJSON(t, r, "GET", "/teacherRequests/a@x.com", bearerToken(t, "a@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, models.RequestApproved, list[0]["status"])
}

func TestTeacherRequestGating(t *testing.T) {
	t.Run("Should hide the queue from non-admins", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		seedUser(t, s, "a@x.com", models.RoleStudent)

		w := doJSON(t, r, "GET", "/teacherRequests", bearerToken(t, "a@x.com"), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should require a token to apply", func(t *testing.T) {
		r, _, _ := newTestEnv(t)

		w := doJSON(t, r, "POST", "/teacherRequests", "", gin.H{"email": "a@x.com"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a malformed id on status updates", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		seedUser(t, s, "admin@x.com", models.RoleAdmin)

		w := doJSON(t, r, "PATCH", "/teacherRequests/nope", bearerToken(t, "admin@x.com"), gin.H{"status": models.RequestApproved})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
