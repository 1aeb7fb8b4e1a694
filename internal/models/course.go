package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	CoursePending  = "pending"
	CourseApproved = "approved"
)

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`   // teacher display name
	Email       string             `bson:"email" json:"email"` // owning teacher, matched for ownership
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"` // "pending", "approved"
}

// CourseContent is the field set overwritten by the teacher-gated edit.
type CourseContent struct {
	Name        string  `bson:"name" json:"name"`
	Email       string  `bson:"email" json:"email"`
	Title       string  `bson:"title" json:"title"`
	Image       string  `bson:"image" json:"image"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`
}
