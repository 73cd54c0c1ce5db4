package report

import (
	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/department"
	"github.com/Shayanthavi/employee-management-go/internal/domain/employee"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/validator"
)

// Filter narrows the comprehensive report. Zero values mean "no filter".
// Department matches the employee's free-text department field, which is
// what the front-end sends as departmentId.
type Filter struct {
	StartDate  string
	EndDate    string
	EmployeeID int64
	Department string
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateRange is an optional inclusive date window.
type DateRange struct {
	StartDate string
	EndDate   string
}

func (r *DateRange) Validate() error {
	f := Filter{StartDate: r.StartDate, EndDate: r.EndDate}
	return f.Validate()
}

// Statistics holds the headline numbers of the comprehensive report.
// AbsentToday counts every employee without an explicit Present record
// today as absent, including employees with no attendance row at all.
type Statistics struct {
	TotalEmployees   int `json:"totalEmployees"`
	TotalDepartments int `json:"totalDepartments"`
	PresentToday     int `json:"presentToday"`
	AbsentToday      int `json:"absentToday"`
	PendingLeaves    int `json:"pendingLeaves"`
	ApprovedLeaves   int `json:"approvedLeaves"`
	RejectedLeaves   int `json:"rejectedLeaves"`
}

// MonthlySummary tallies one YYYY-MM bucket of attendance rows.
type MonthlySummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
}

// ReportsResponse is the comprehensive report payload: derived statistics
// plus the raw lists they were computed from.
type ReportsResponse struct {
	Statistics        Statistics                `json:"statistics"`
	Employees         []employee.Employee       `json:"employees"`
	Attendance        []attendance.Attendance   `json:"attendance"`
	Leaves            []leave.LeaveRequest      `json:"leaves"`
	Departments       []department.Department   `json:"departments"`
	DepartmentStats   map[string]int            `json:"departmentStats"`
	MonthlyAttendance map[string]MonthlySummary `json:"monthlyAttendance"`
}

// EmployeeStatistics holds per-employee attendance and leave tallies.
// AttendanceRate is a percentage rounded to two decimals, 0 when the
// employee has no attendance rows.
type EmployeeStatistics struct {
	TotalDays      int     `json:"totalDays"`
	PresentDays    int     `json:"presentDays"`
	AbsentDays     int     `json:"absentDays"`
	LeaveDays      int     `json:"leaveDays"`
	AttendanceRate float64 `json:"attendanceRate"`
	TotalLeaves    int     `json:"totalLeaves"`
	PendingLeaves  int     `json:"pendingLeaves"`
	ApprovedLeaves int     `json:"approvedLeaves"`
	RejectedLeaves int     `json:"rejectedLeaves"`
}

// EmployeeReportResponse is the per-employee report payload.
type EmployeeReportResponse struct {
	Employee   employee.Employee       `json:"employee"`
	Attendance []attendance.Attendance `json:"attendance"`
	Leaves     []leave.LeaveRequest    `json:"leaves"`
	Statistics EmployeeStatistics      `json:"statistics"`
}

// CalendarRequest selects one month of attendance, optionally for a single
// employee.
type CalendarRequest struct {
	Month      string
	Year       string
	EmployeeID int64
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) || validator.IsEmpty(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "Month and year are required",
		})
		return errs
	}

	if !validator.IsNumeric(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be numeric",
		})
	}
	if !validator.IsNumeric(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be numeric",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalendarDay tallies one date's attendance rows.
type CalendarDay struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	Total   int `json:"total"`
}
