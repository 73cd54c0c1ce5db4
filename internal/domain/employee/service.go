package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee creates a new employee record
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// ListEmployees lists all employees, newest first
	ListEmployees(ctx context.Context) ([]Employee, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id int64) (Employee, error)

	// UpdateEmployee partially updates an employee (empty fields are kept)
	UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes an employee; attendance and leave rows that
	// mention the employee's name are left untouched
	DeleteEmployee(ctx context.Context, id int64) error
}
