package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	UserID   string `json:"user_id"`
}

type SeedUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=HR Manager Employee"`
	Password string `json:"password" binding:"required"`
}

type SeedUserResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// UserProfile is the sanitized account view; password material is never
// serialized.
type UserProfile struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type EmployeeProfile struct {
	ID            string  `json:"_id"`
	UserID        string  `json:"user_id"`
	JoiningDate   *string `json:"joining_date"`
	DepartmentID  *string `json:"department_id"`
	Designation   *string `json:"designation"`
	ManagerUserID *string `json:"manager_user_id"`
}

type MeResponse struct {
	User     UserProfile      `json:"user"`
	Employee *EmployeeProfile `json:"employee"`
}
