package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CourseID        string             `bson:"courseId" json:"courseId"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	PublishDate     time.Time          `bson:"publishDate" json:"publishDate"`
	SubmissionCount int64              `bson:"submissionCount" json:"submissionCount"`
}
