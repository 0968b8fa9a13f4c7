package leave

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "leaverequest"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	TypeAnnual = "Annual"
	TypeSick   = "Sick"
	TypeCasual = "Casual"
	TypeUnpaid = "Unpaid"
	TypeOther  = "Other"
)

// LeaveRequest is owned by the submitting employee. After creation only
// status, manager comment and the update timestamp change, via the action
// endpoint. ManagerUserID is the approver resolved at submission time; it is
// informational and does not restrict who may act.
type LeaveRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeUserID string             `bson:"employee_user_id"`
	ManagerUserID  *string            `bson:"manager_user_id"`
	StartDate      string             `bson:"start_date"`
	EndDate        string             `bson:"end_date"`
	Type           string             `bson:"type"`
	Reason         *string            `bson:"reason"`
	Status         string             `bson:"status"`
	ManagerComment *string            `bson:"manager_comment,omitempty"`
	UpdatedAt      *time.Time         `bson:"updated_at,omitempty"`
}
