package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillup-platform/skillup-api/internal/models"
)

// NewMongoStore wires the seven collections of the SkillUp database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:           &mongoUsers{c: db.Collection("users")},
		TeacherRequests: &mongoTeacherRequests{c: db.Collection("teacherRequests")},
		Courses:         &mongoCourses{c: db.Collection("courses")},
		Enrollments:     &mongoEnrollments{c: db.Collection("enrolls")},
		Assignments:     &mongoAssignments{c: db.Collection("assignments")},
		Feedback:        &mongoFeedback{c: db.Collection("feedbacks")},
		Payments:        &mongoPayments{c: db.Collection("payments")},
	}
}

func insertResult(res *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}

// --- users ---

type mongoUsers struct {
	c *mongo.Collection
}

func (s *mongoUsers) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUsers) Insert(ctx context.Context, user models.User) (*InsertResult, error) {
	res, err := s.c.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (s *mongoUsers) SetRole(ctx context.Context, email, role string) (*UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (s *mongoUsers) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}

// --- teacher requests ---

type mongoTeacherRequests struct {
	c *mongo.Collection
}

func (s *mongoTeacherRequests) All(ctx context.Context) ([]models.TeacherRequest, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reqs := make([]models.TeacherRequest, 0)
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *mongoTeacherRequests) FindByEmail(ctx context.Context, email string) ([]models.TeacherRequest, error) {
	cursor, err := s.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reqs := make([]models.TeacherRequest, 0)
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *mongoTeacherRequests) Insert(ctx context.Context, req models.TeacherRequest) (*InsertResult, error) {
	res, err := s.c.InsertOne(ctx, req)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (s *mongoTeacherRequests) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

// --- courses ---

type mongoCourses struct {
	c *mongo.Collection
}

func (s *mongoCourses) All(ctx context.Context) ([]models.Course, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoCourses) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *mongoCourses) FindByStatus(ctx context.Context, status string) ([]models.Course, error) {
	return s.find(ctx, bson.M{"status": status})
}

func (s *mongoCourses) FindByTeacher(ctx context.Context, email string) ([]models.Course, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *mongoCourses) find(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cursor, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := make([]models.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *mongoCourses) Insert(ctx context.Context, course models.Course) (*InsertResult, error) {
	res, err := s.c.InsertOne(ctx, course)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (s *mongoCourses) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (s *mongoCourses) UpdateContent(ctx context.Context, id primitive.ObjectID, content models.CourseContent) (*UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": content})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (s *mongoCourses) Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// --- enrollments ---

type mongoEnrollments struct {
	c *mongo.Collection
}

func (s *mongoEnrollments) FindByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	return s.find(ctx, bson.M{"courseId": courseID})
}

func (s *mongoEnrollments) FindByStudent(ctx context.Context, email string) ([]models.Enrollment, error) {
	return s.find(ctx, bson.M{"studentEmail": email})
}

func (s *mongoEnrollments) find(ctx context.Context, filter bson.M) ([]models.Enrollment, error) {
	cursor, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	enrollments := make([]models.Enrollment, 0)
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *mongoEnrollments) Insert(ctx context.Context, enrollment models.Enrollment) (*InsertResult, error) {
	res, err := s.c.InsertOne(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (s *mongoEnrollments) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}

// --- assignments ---

type mongoAssignments struct {
	c *mongo.Collection
}

func (s *mongoAssignments) FindByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}})
	cursor, err := s.c.Find(ctx, bson.M{"courseId": courseID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := make([]models.Assignment, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *mongoAssignments) Insert(ctx context.Context, assignment models.Assignment) (*InsertResult, error) {
	res, err := s.c.InsertOne(ctx, assignment)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (s *mongoAssignments) SetSubmissionCount(ctx context.Context, id primitive.ObjectID, count int64) (*UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"submissionCount": count}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (s *mongoAssignments) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}

// --- feedback ---

type mongoFeedback struct {
	c *mongo.Collection
}

func (s *mongoFeedback) All(ctx context.Context) ([]bson.M, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *mongoFeedback) Insert(ctx context.Context, doc bson.M) (*InsertResult, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

// --- payments ---

type mongoPayments struct {
	c *mongo.Collection
}

func (s *mongoPayments) Insert(ctx context.Context, doc bson.M) (*InsertResult, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}
