package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDB represents a user document in the users collection
type UserDB struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"` // Assigned by the store on insert
	Username string             `json:"username" bson:"username"` // Supplied by the client, not unique
}
