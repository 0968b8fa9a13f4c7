package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "useraccount"

// Account is a login-capable user. Employee profile data lives in the
// employee collection, keyed by this account's id.
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	FullName       string             `bson:"full_name"`
	Role           string             `bson:"role"`
	HashedPassword string             `bson:"hashed_password"`
	IsActive       bool               `bson:"is_active"`
}
