package dashboard

import (
	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
)

// Summary holds the headline dashboard counters.
type Summary struct {
	TotalEmployees int `json:"totalEmployees"`
	// ActiveEmployees mirrors TotalEmployees; there is no active/inactive
	// distinction on employees yet and the front-end expects the field.
	ActiveEmployees  int `json:"activeEmployees"`
	TodaysAttendance int `json:"todaysAttendance"`
	TotalLeaves      int `json:"totalLeaves"`
	PendingLeaves    int `json:"pendingLeaves"`
}

// TrendPoint is one day of the 14-day Present-count trend.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
}

// StatsResponse is the full dashboard payload.
type StatsResponse struct {
	Summary               Summary                 `json:"summary"`
	RecentAttendance      []attendance.Attendance `json:"recentAttendance"`
	RecentLeaves          []leave.LeaveRequest    `json:"recentLeaves"`
	EmployeesOnLeaveToday []leave.LeaveRequest    `json:"employeesOnLeaveToday"`
	AttendanceTrend       []TrendPoint            `json:"attendanceTrend"`
}

// SummaryResponse is the lightweight dashboard payload.
type SummaryResponse struct {
	TotalEmployees   int `json:"totalEmployees"`
	TodaysAttendance int `json:"todaysAttendance"`
	PendingLeaves    int `json:"pendingLeaves"`
}
