package department

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "department"

// Department groups employees. ManagerID references a UserAccount id; no
// invariant ties it to that account's actual role.
type Department struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description"`
	ManagerID   *string            `bson:"manager_id"`
}
