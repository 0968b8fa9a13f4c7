package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

type LeaveSubmittedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveID        string    `json:"leave_id"`
	EmployeeUserID string    `json:"employee_user_id"`
	ManagerUserID  *string   `json:"manager_user_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	Status     string    `json:"status"`
	ActedBy    string    `json:"acted_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
