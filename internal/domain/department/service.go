package department

import "context"

// DepartmentService defines business logic for department operations
type DepartmentService interface {
	// CreateDepartment adds a department; duplicate names are rejected
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (Department, error)

	// ListDepartments lists all departments alphabetically
	ListDepartments(ctx context.Context) ([]Department, error)
}
