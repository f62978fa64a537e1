package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseDB represents an exercise document in the exercises collection
type ExerciseDB struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`      // Assigned by the store on insert
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`           // Owning user's id
	Username    string             `json:"username" bson:"username"`       // Copied from the user at creation time
	Description string             `json:"description" bson:"description"`
	Duration    int                `json:"duration" bson:"duration"`       // Minutes
	Date        time.Time          `json:"date" bson:"date"`
}

// ExerciseLog holds a user's exercises after filtering.
type ExerciseLog struct {
	UserID   primitive.ObjectID
	Username string
	Entries  []ExerciseDB
}

// LogFilter selects exercises for the log query.
// From and To are inclusive date bounds; nil means unbounded.
// Limit caps the result count after the date-ascending sort; nil means no cap.
type LogFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  *int64
}
