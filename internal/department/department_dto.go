package department

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ManagerID   *string `json:"manager_id"`
}

type CreateDepartmentResponse struct {
	ID string `json:"id"`
}

// DepartmentResponse mirrors the stored document, id serialized under "_id"
// for wire compatibility.
type DepartmentResponse struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ManagerID   *string `json:"manager_id"`
}
