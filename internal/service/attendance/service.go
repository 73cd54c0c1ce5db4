package attendance

import (
	"context"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// CreateAttendance implements attendance.AttendanceService. Nothing stops a
// second record for the same employee and date; one-per-day is a convention,
// not a constraint.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	return s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeName: req.EmployeeName,
		Date:         req.Date,
		Status:       req.Status,
	})
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.Attendance, error) {
	return s.attendanceRepo.List(ctx, attendance.AttendanceFilter{})
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id int64) (attendance.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.Attendance{}, err
	}

	req.ApplyTo(&att)
	return s.attendanceRepo.Update(ctx, att)
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}
