package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Enrollment is append-only: never mutated or deleted, and deleting a
// course does not cascade here.
type Enrollment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CourseID     string             `bson:"courseId" json:"courseId"`
	StudentEmail string             `bson:"studentEmail" json:"studentEmail"`
}
