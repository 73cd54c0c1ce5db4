package leave

import "context"

// LeaveFilter narrows List results. Zero values mean "no filter".
type LeaveFilter struct {
	EmployeeName string
}

// LeaveRepository defines data access methods for leave requests.
// List returns rows ordered by start date descending.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id int64) (LeaveRequest, error)

	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)

	Update(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	Delete(ctx context.Context, id int64) error
}
