package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillup-platform/skillup-api/internal/models"
)

// Result types mirror the wire shape of the Node Mongo driver results the
// SkillUp frontend already consumes (insertedId, matchedCount, ...).

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Find-one misses return (nil, nil), never an error: handlers serve the
// miss as a JSON null with status 200.

type UserStore interface {
	All(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*InsertResult, error)
	SetRole(ctx context.Context, email, role string) (*UpdateResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type TeacherRequestStore interface {
	All(ctx context.Context) ([]models.TeacherRequest, error)
	FindByEmail(ctx context.Context, email string) ([]models.TeacherRequest, error)
	Insert(ctx context.Context, req models.TeacherRequest) (*InsertResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*UpdateResult, error)
}

type CourseStore interface {
	All(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindByStatus(ctx context.Context, status string) ([]models.Course, error)
	FindByTeacher(ctx context.Context, email string) ([]models.Course, error)
	Insert(ctx context.Context, course models.Course) (*InsertResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*UpdateResult, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content models.CourseContent) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}

type EnrollmentStore interface {
	FindByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
	FindByStudent(ctx context.Context, email string) ([]models.Enrollment, error)
	Insert(ctx context.Context, enrollment models.Enrollment) (*InsertResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type AssignmentStore interface {
	// FindByCourse returns assignments sorted by publishDate descending.
	FindByCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	Insert(ctx context.Context, assignment models.Assignment) (*InsertResult, error)
	SetSubmissionCount(ctx context.Context, id primitive.ObjectID, count int64) (*UpdateResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// Feedback and payment records are free-form documents; no struct.

type FeedbackStore interface {
	All(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, doc bson.M) (*InsertResult, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, doc bson.M) (*InsertResult, error)
}

// Store bundles the per-collection accessors handed to the route layer.
type Store struct {
	Users           UserStore
	TeacherRequests TeacherRequestStore
	Courses         CourseStore
	Enrollments     EnrollmentStore
	Assignments     AssignmentStore
	Feedback        FeedbackStore
	Payments        PaymentStore
}
