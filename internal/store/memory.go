package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillup-platform/skillup-api/internal/models"
)

// NewMemoryStore returns a Store backed by in-process maps. It exists for
// handler tests and local development without a Mongo instance; semantics
// (miss -> nil, generated ObjectIDs, publishDate sort) match the Mongo
// implementation.
func NewMemoryStore() *Store {
	mu := &sync.RWMutex{}
	return &Store{
		Users:           &memUsers{mu: mu, t: map[primitive.ObjectID]models.User{}},
		TeacherRequests: &memTeacherRequests{mu: mu, t: map[primitive.ObjectID]models.TeacherRequest{}},
		Courses:         &memCourses{mu: mu, t: map[primitive.ObjectID]models.Course{}},
		Enrollments:     &memEnrollments{mu: mu},
		Assignments:     &memAssignments{mu: mu, t: map[primitive.ObjectID]models.Assignment{}},
		Feedback:        &memFeedback{mu: mu},
		Payments:        &memPayments{mu: mu},
	}
}

// --- users ---

type memUsers struct {
	mu *sync.RWMutex
	t  map[primitive.ObjectID]models.User
}

func (s *memUsers) All(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.t))
	for _, u := range s.t {
		users = append(users, u)
	}
	return users, nil
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.t {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUsers) Insert(_ context.Context, user models.User) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.t[user.ID] = user
	return &InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (s *memUsers) SetRole(_ context.Context, email, role string) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, u := range s.t {
		if u.Email == email {
			modified := int64(0)
			if u.Role != role {
				u.Role = role
				s.t[id] = u
				modified = 1
			}
			return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &UpdateResult{Acknowledged: true}, nil
}

func (s *memUsers) EstimatedCount(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.t)), nil
}

// --- teacher requests ---

type memTeacherRequests struct {
	mu *sync.RWMutex
	t  map[primitive.ObjectID]models.TeacherRequest
}

func (s *memTeacherRequests) All(_ context.Context) ([]models.TeacherRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reqs := make([]models.TeacherRequest, 0, len(s.t))
	for _, r := range s.t {
		reqs = append(reqs, r)
	}
	return reqs, nil
}

func (s *memTeacherRequests) FindByEmail(_ context.Context, email string) ([]models.TeacherRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reqs := make([]models.TeacherRequest, 0)
	for _, r := range s.t {
		if r.Email == email {
			reqs = append(reqs, r)
		}
	}
	return reqs, nil
}

func (s *memTeacherRequests) Insert(_ context.Context, req models.TeacherRequest) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	s.t[req.ID] = req
	return &InsertResult{Acknowledged: true, InsertedID: req.ID}, nil
}

func (s *memTeacherRequests) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.t[id]
	if !ok {
		return &UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if req.Status != status {
		req.Status = status
		s.t[id] = req
		modified = 1
	}
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

// --- courses ---

type memCourses struct {
	mu *sync.RWMutex
	t  map[primitive.ObjectID]models.Course
}

func (s *memCourses) All(_ context.Context) ([]models.Course, error) {
	return s.find(func(models.Course) bool { return true }), nil
}

func (s *memCourses) FindByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.t[id]
	if !ok {
		return nil, nil
	}
	return &course, nil
}

func (s *memCourses) FindByStatus(_ context.Context, status string) ([]models.Course, error) {
	return s.find(func(c models.Course) bool { return c.Status == status }), nil
}

func (s *memCourses) FindByTeacher(_ context.Context, email string) ([]models.Course, error) {
	return s.find(func(c models.Course) bool { return c.Email == email }), nil
}

func (s *memCourses) find(match func(models.Course) bool) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]models.Course, 0)
	for _, c := range s.t {
		if match(c) {
			courses = append(courses, c)
		}
	}
	return courses
}

func (s *memCourses) Insert(_ context.Context, course models.Course) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	s.t[course.ID] = course
	return &InsertResult{Acknowledged: true, InsertedID: course.ID}, nil
}

func (s *memCourses) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.t[id]
	if !ok {
		return &UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if course.Status != status {
		course.Status = status
		s.t[id] = course
		modified = 1
	}
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (s *memCourses) UpdateContent(_ context.Context, id primitive.ObjectID, content models.CourseContent) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.t[id]
	if !ok {
		return &UpdateResult{Acknowledged: true}, nil
	}
	course.Name = content.Name
	course.Email = content.Email
	course.Title = content.Title
	course.Image = content.Image
	course.Price = content.Price
	course.Description = content.Description
	s.t[id] = course
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *memCourses) Delete(_ context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.t[id]; !ok {
		return &DeleteResult{Acknowledged: true}, nil
	}
	delete(s.t, id)
	return &DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// --- enrollments ---

type memEnrollments struct {
	mu *sync.RWMutex
	t  []models.Enrollment
}

func (s *memEnrollments) FindByCourse(_ context.Context, courseID string) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollments := make([]models.Enrollment, 0)
	for _, e := range s.t {
		if e.CourseID == courseID {
			enrollments = append(enrollments, e)
		}
	}
	return enrollments, nil
}

func (s *memEnrollments) FindByStudent(_ context.Context, email string) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollments := make([]models.Enrollment, 0)
	for _, e := range s.t {
		if e.StudentEmail == email {
			enrollments = append(enrollments, e)
		}
	}
	return enrollments, nil
}

func (s *memEnrollments) Insert(_ context.Context, enrollment models.Enrollment) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enrollment.ID.IsZero() {
		enrollment.ID = primitive.NewObjectID()
	}
	s.t = append(s.t, enrollment)
	return &InsertResult{Acknowledged: true, InsertedID: enrollment.ID}, nil
}

func (s *memEnrollments) EstimatedCount(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.t)), nil
}

// --- assignments ---

type memAssignments struct {
	mu *sync.RWMutex
	t  map[primitive.ObjectID]models.Assignment
}

func (s *memAssignments) FindByCourse(_ context.Context, courseID string) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assignments := make([]models.Assignment, 0)
	for _, a := range s.t {
		if a.CourseID == courseID {
			assignments = append(assignments, a)
		}
	}
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].PublishDate.After(assignments[j].PublishDate)
	})
	return assignments, nil
}

func (s *memAssignments) Insert(_ context.Context, assignment models.Assignment) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
	}
	s.t[assignment.ID] = assignment
	return &InsertResult{Acknowledged: true, InsertedID: assignment.ID}, nil
}

func (s *memAssignments) SetSubmissionCount(_ context.Context, id primitive.ObjectID, count int64) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, ok := s.t[id]
	if !ok {
		return &UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if assignment.SubmissionCount != count {
		assignment.SubmissionCount = count
		s.t[id] = assignment
		modified = 1
	}
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (s *memAssignments) EstimatedCount(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.t)), nil
}

// --- feedback ---

type memFeedback struct {
	mu *sync.RWMutex
	t  []bson.M
}

func (s *memFeedback) All(_ context.Context) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]bson.M, 0, len(s.t))
	docs = append(docs, s.t...)
	return docs, nil
}

func (s *memFeedback) Insert(_ context.Context, doc bson.M) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	doc["_id"] = id
	s.t = append(s.t, doc)
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// --- payments ---

type memPayments struct {
	mu *sync.RWMutex
	t  []bson.M
}

func (s *memPayments) Insert(_ context.Context, doc bson.M) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	doc["_id"] = id
	s.t = append(s.t, doc)
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}
