package leave

import "context"

// LeaveService defines business logic for leave request operations
type LeaveService interface {
	// CreateLeave creates a leave request; status defaults to Pending
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error)

	// ListLeave lists all requests, most recent start date first
	ListLeave(ctx context.Context) ([]LeaveRequest, error)

	GetLeave(ctx context.Context, id int64) (LeaveRequest, error)

	UpdateLeave(ctx context.Context, id int64, req UpdateLeaveRequest) (LeaveRequest, error)

	DeleteLeave(ctx context.Context, id int64) error
}
