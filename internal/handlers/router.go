package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillup-platform/skillup-api/internal/middleware"
	"github.com/skillup-platform/skillup-api/internal/models"
)

// SetupRoutes registers the full route matrix. Gates are ordered: the
// auth gate must run before any role gate.
func (h *Handler) SetupRoutes(r *gin.Engine) {
	auth := middleware.AuthMiddleware()
	admin := middleware.RequireRole(h.Store.Users, models.RoleAdmin)
	teacher := middleware.RequireRole(h.Store.Users, models.RoleTeacher)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "SkillUp is running")
	})

	r.POST("/jwt", h.IssueToken)

	r.GET("/users", auth, admin, h.ListUsers)
	r.GET("/users/:email", auth, h.GetUser)
	r.GET("/users/admin/:email", auth, h.CheckAdmin)
	r.GET("/users/teacher/:email", auth, h.CheckTeacher)
	r.GET("/users/teacher/myCourses/:email", auth, teacher, h.ListTeacherCourses)
	r.POST("/users", h.RegisterUser)
	r.PATCH("/users/:email", auth, admin, h.SetUserRole)

	r.GET("/teacherRequests", auth, admin, h.ListTeacherRequests)
	r.GET("/teacherRequests/:email", auth, h.ListTeacherRequestsByEmail)
	r.POST("/teacherRequests", auth, h.CreateTeacherRequest)
	r.PATCH("/teacherRequests/:id", auth, admin, h.SetTeacherRequestStatus)

	r.GET("/courses", auth, admin, h.ListCourses)
	r.GET("/courses/update/:id", auth, teacher, h.GetCourseForEdit)
	r.GET("/courses/valid-courses", h.ListApprovedCourses)
	r.GET("/courses/valid-courses/:id", auth, h.GetApprovedCourse)
	r.POST("/courses", auth, teacher, h.CreateCourse)
	r.PATCH("/courses/:id", auth, admin, h.SetCourseStatus)
	r.PATCH("/courses/update/:id", auth, teacher, h.UpdateCourseContent)
	r.DELETE("/courses/:id", auth, teacher, h.DeleteCourse)

	r.GET("/enrolls/course/:id", h.ListEnrollmentsByCourse)
	r.GET("/enrolls/student/:email", auth, h.ListEnrollmentsByStudent)
	r.POST("/enrolls", h.CreateEnrollment)

	r.GET("/assignments/:id", auth, h.ListAssignmentsByCourse)
	r.POST("/assignments", auth, teacher, h.CreateAssignment)
	r.PATCH("/assignments/:id", auth, h.SetSubmissionCount)

	r.GET("/feedbacks", h.ListFeedback)
	r.POST("/feedbacks", auth, h.CreateFeedback)

	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.POST("/payments", auth, h.CreatePayment)

	r.GET("/stats", h.GetStats)
}
