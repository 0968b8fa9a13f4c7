package employee

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "employee"

// Employee is the profile extension of a UserAccount. UserID holds the
// account id as a hex string; the account itself owns email, full name and
// role.
type Employee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	JoiningDate   *string            `bson:"joining_date"`
	DepartmentID  *string            `bson:"department_id"`
	Designation   *string            `bson:"designation"`
	ManagerUserID *string            `bson:"manager_user_id"`
}
