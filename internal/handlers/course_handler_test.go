package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillup-platform/skillup-api/internal/models"
	"github.com/skillup-platform/skillup-api/internal/store"
)

func seedCourse(t *testing.T, s *store.Store, course models.Course) primitive.ObjectID {
	t.Helper()
	res, err := s.Courses.Insert(context.Background(), course)
	require.NoError(t, err)
	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)
	return id
}

func TestCreateCourse(t *testing.T) {
	t.Run("Should reject without a token", func(t *testing.T) {
		r, _, _ := newTestEnv(t)

		w := doJSON(t, r, "POST", "/courses", "", gin.H{"title": "Go 101"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a student", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		seedUser(t, s, "student@x.com", models.RoleStudent)

		w := doJSON(t, r, "POST", "/courses", bearerToken(t, "student@x.com"), gin.H{"title": "Go 101"})

		assert.Equal(t, http.StatusForbidden, w.Code)

		courses, err := s.Courses.All(context.Background())
		require.NoError(t, err)
		assert.Empty(t, courses)
	})

	t.Run("Should insert for a teacher", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		seedUser(t, s, "teacher@x.com", models.RoleTeacher)

		w := doJSON(t, r, "POST", "/courses", bearerToken(t, "teacher@x.com"), gin.H{
			"name":   "Teacher",
			"email":  "teacher@x.com",
			"title":  "Go 101",
			"price":  49.99,
			"status": models.CoursePending,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, decodeBody(t, w)["insertedId"])
	})
}

func TestCourseApprovalFlow(t *testing.T) {
	r, s, _ := newTestEnv(t)
	seedUser(t, s, "admin@x.com", models.RoleAdmin)
	id := seedCourse(t, s, models.Course{
		Email:  "teacher@x.com",
		Title:  "Go 101",
		Status: models.CoursePending,
	})

	// Pending courses are absent from the public catalog.
	w := doJSON(t, r, "GET", "/courses/valid-courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	// Admin approval makes the course visible.
	w = doJSON(t, r, "PATCH", "/courses/"+id.Hex(), bearerToken(t, "admin@x.com"), gin.H{"status": models.CourseApproved})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/courses/valid-courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Go 101", list[0]["title"])

	// Reverting the status hides it again.
	w = doJSON(t, r, "PATCH", "/courses/"+id.Hex(), bearerToken(t, "admin@x.com"), gin.H{"status": models.CoursePending})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/courses/valid-courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestSetCourseStatus(t *testing.T) {
	t.Run("Should reject a malformed id", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		seedUser(t, s, "admin@x.com", models.RoleAdmin)

		w := doJSON(t, r, "PATCH", "/courses/not-a-hex-id", bearerToken(t, "admin@x.com"), gin.H{"status": models.CourseApproved})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject a teacher", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		seedUser(t, s, "teacher@x.com", models.RoleTeacher)
		id := seedCourse(t, s, models.Course{Email: "teacher@x.com", Status: models.CoursePending})

		w := doJSON(t, r, "PATCH", "/courses/"+id.Hex(), bearerToken(t, "teacher@x.com"), gin.H{"status": models.CourseApproved})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUpdateCourseContent(t *testing.T) {
	r, s, _ := newTestEnv(t)
	seedUser(t, s, "teacher@x.com", models.RoleTeacher)
	id := seedCourse(t, s, models.Course{
		Name:   "Teacher",
		Email:  "teacher@x.com",
		Title:  "Go 101",
		Price:  49.99,
		Status: models.CourseApproved,
	})

	w := doJSON(t, r, "PATCH", "/courses/update/"+id.Hex(), bearerToken(t, "teacher@x.com"), gin.H{
		"name":        "Teacher",
		"email":       "teacher@x.com",
		"title":       "Go 201",
		"image":       "https://img.example/go201.png",
		"price":       59.99,
		"description": "Intermediate Go",
	})

	require.Equal(t, http.StatusOK, w.Code)

	course, err := s.Courses.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "Go 201", course.Title)
	assert.Equal(t, 59.99, course.Price)
	// Status is not part of the editable content set.
	assert.Equal(t, models.CourseApproved, course.Status)
}

func TestGetCourseForEdit(t *testing.T) {
	r, s, _ := newTestEnv(t)
	seedUser(t, s, "teacher@x.com", models.RoleTeacher)
	id := seedCourse(t, s, models.Course{Email: "teacher@x.com", Title: "Go 101", Status: models.CoursePending})

	w := doJSON(t, r, "GET", "/courses/update/"+id.Hex(), bearerToken(t, "teacher@x.com"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Go 101", decodeBody(t, w)["title"])
}

func TestGetApprovedCourse(t *testing.T) {
	t.Run("Should return the course to an authenticated user", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		seedUser(t, s, "a@x.com", models.RoleStudent)
		id := seedCourse(t, s, models.Course{Email: "teacher@x.com", Title: "Go 101", Status: models.CourseApproved})

		w := doJSON(t, r, "GET", "/courses/valid-courses/"+id.Hex(), bearerToken(t, "a@x.com"), nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Go 101", decodeBody(t, w)["title"])
	})

	t.Run("Should reject without a token", func(t *testing.T) {
		r, s, _ := newTestEnv(t)
		id := seedCourse(t, s, models.Course{Title: "Go 101", Status: models.CourseApproved})

		w := doJSON(t, r, "GET", "/courses/valid-courses/"+id.Hex(), "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListTeacherCourses(t *testing.T) {
	r, s, _ := newTestEnv(t)
	seedUser(t, s, "teacher@x.com", models.RoleTeacher)
	seedCourse(t, s, models.Course{Email: "teacher@x.com", Title: "Mine", Status: models.CoursePending})
	seedCourse(t, s, models.Course{Email: "other@x.com", Title: "Not mine", Status: models.CoursePending})

	w := doJSON(t, r, "GET", "/users/teacher/myCourses/teacher@x.com", bearerToken(t, "teacher@x.com"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0]["title"])
}

func TestDeleteCourse(t *testing.T) {
	r, s, _ := newTestEnv(t)
	seedUser(t, s, "teacher@x.com", models.RoleTeacher)
	id := seedCourse(t, s, models.Course{Email: "teacher@x.com", Title: "Go 101", Status: models.CourseApproved})

	// An existing enrollment referencing the course.
	_, err := s.Enrollments.Insert(context.Background(), models.Enrollment{
		CourseID:     id.Hex(),
		StudentEmail: "a@x.com",
	})
	require.NoError(t, err)

	w := doJSON(t, r, "DELETE", "/courses/"+id.Hex(), bearerToken(t, "teacher@x.com"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["deletedCount"])

	course, err := s.Courses.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, course)

	// No cascade: the enrollment survives the course.
	enrollments, err := s.Enrollments.FindByCourse(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}
