package attendance

import "context"

// AttendanceFilter narrows List results. Dates compare as YYYY-MM-DD.
// From/To are inclusive; Before is exclusive and exists for calendar month
// windows, which are half-open ranges [first-of-month, first-of-next-month).
type AttendanceFilter struct {
	EmployeeName string
	From         string
	To           string
	Before       string
}

// AttendanceRepository defines data access methods for attendance records.
// List returns rows ordered by date descending.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id int64) (Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	Update(ctx context.Context, att Attendance) (Attendance, error)

	Delete(ctx context.Context, id int64) error
}
