package employee

type CreateEmployeeRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	FullName      string  `json:"full_name" binding:"required"`
	Password      string  `json:"password" binding:"required"`
	JoiningDate   *string `json:"joining_date"`
	DepartmentID  *string `json:"department_id"`
	Designation   *string `json:"designation"`
	ManagerUserID *string `json:"manager_user_id"`
}

type CreateEmployeeResponse struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
}

// UpdateEmployeeRequest carries a partial update: nil fields are left
// untouched. FullName is redirected to the backing UserAccount.
type UpdateEmployeeRequest struct {
	FullName      *string `json:"full_name"`
	DepartmentID  *string `json:"department_id"`
	Designation   *string `json:"designation"`
	ManagerUserID *string `json:"manager_user_id"`
}

// EmployeeListItem is the employee row joined with its UserAccount.
type EmployeeListItem struct {
	UserID        string  `json:"user_id"`
	FullName      *string `json:"full_name"`
	Email         *string `json:"email"`
	DepartmentID  *string `json:"department_id"`
	Designation   *string `json:"designation"`
	ManagerUserID *string `json:"manager_user_id"`
}
