package report

import "context"

// ReportService computes read-only reporting views from the raw entity
// lists; it never mutates data.
type ReportService interface {
	// GetReports returns the comprehensive report for an optional date
	// range, employee, and department filter
	GetReports(ctx context.Context, filter Filter) (*ReportsResponse, error)

	// GetEmployeeReport returns one employee's attendance and leave report;
	// rows are matched on the employee's name
	GetEmployeeReport(ctx context.Context, employeeID int64, dateRange DateRange) (*EmployeeReportResponse, error)

	// GetAttendanceCalendar groups one month's attendance rows by date
	GetAttendanceCalendar(ctx context.Context, req CalendarRequest) (map[string]*CalendarDay, error)
}
