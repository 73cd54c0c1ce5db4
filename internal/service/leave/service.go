package leave

import (
	"context"

	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	status := req.Status
	if status == "" {
		status = leave.StatusPending
	}

	return s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeName: req.EmployeeName,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Status:       status,
	})
}

// ListLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeave(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.List(ctx, leave.LeaveFilter{})
}

// GetLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

// UpdateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeave(ctx context.Context, id int64, req leave.UpdateLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	req.ApplyTo(&lr)
	return s.leaveRepo.Update(ctx, lr)
}

// DeleteLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, id int64) error {
	return s.leaveRepo.Delete(ctx, id)
}
