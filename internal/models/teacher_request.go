package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// TeacherRequest is a user's application for the teacher role. Status is
// mutated only through the admin-gated PATCH.
type TeacherRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Experience string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Status     string             `bson:"status" json:"status"` // "pending", "approved", "rejected"
}
