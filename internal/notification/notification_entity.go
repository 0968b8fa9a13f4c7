package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "notification"

// Notification is an append-only record. Exactly one of UserID (direct
// recipient) or Audience (role broadcast) is expected to be set. IsRead is
// stored but no mutation path flips it.
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     *string            `bson:"user_id"`
	Audience   *string            `bson:"audience"`
	Title      string             `bson:"title"`
	Message    string             `bson:"message"`
	EntityType *string            `bson:"entity_type"`
	EntityID   *string            `bson:"entity_id"`
	IsRead     bool               `bson:"is_read"`
	CreatedAt  time.Time          `bson:"created_at"`
}
