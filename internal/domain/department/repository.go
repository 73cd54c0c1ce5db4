package department

import "context"

// DepartmentRepository defines data access methods for departments.
// List returns rows ordered alphabetically by name.
type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)

	List(ctx context.Context) ([]Department, error)

	// GetByName returns nil (no error) when the name is unused. Uniqueness
	// is enforced by the service as check-then-insert, not atomically.
	GetByName(ctx context.Context, name string) (*Department, error)
}
