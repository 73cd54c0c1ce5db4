package employee

import "context"

// EmployeeFilter narrows List results. Zero values mean "no filter".
type EmployeeFilter struct {
	ID         int64
	Department string

	// SortByName orders results alphabetically instead of the default
	// newest-first (id DESC) listing.
	SortByName bool
}

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id int64) (Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// Update replaces the full row; partial-update merging happens in the
	// service layer.
	Update(ctx context.Context, emp Employee) (Employee, error)

	Delete(ctx context.Context, id int64) error
}
