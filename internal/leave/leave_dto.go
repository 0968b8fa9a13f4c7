package leave

import "time"

type CreateLeaveRequest struct {
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Type      string  `json:"type" binding:"omitempty,oneof=Annual Sick Casual Unpaid Other"`
	Reason    *string `json:"reason"`
}

type CreateLeaveResponse struct {
	ID string `json:"id"`
}

type LeaveActionRequest struct {
	Action  string  `json:"action" binding:"required,oneof=Approve Reject"`
	Comment *string `json:"comment"`
}

type LeaveResponse struct {
	ID             string     `json:"_id"`
	EmployeeUserID string     `json:"employee_user_id"`
	ManagerUserID  *string    `json:"manager_user_id"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	Type           string     `json:"type"`
	Reason         *string    `json:"reason"`
	Status         string     `json:"status"`
	ManagerComment *string    `json:"manager_comment,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
