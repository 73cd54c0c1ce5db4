package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (Attendance, error)

	// ListAttendance lists all records, most recent date first
	ListAttendance(ctx context.Context) ([]Attendance, error)

	GetAttendance(ctx context.Context, id int64) (Attendance, error)

	UpdateAttendance(ctx context.Context, id int64, req UpdateAttendanceRequest) (Attendance, error)

	DeleteAttendance(ctx context.Context, id int64) error
}
