package report

import (
	"math"
	"time"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/department"
	"github.com/Shayanthavi/employee-management-go/internal/domain/employee"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/Shayanthavi/employee-management-go/internal/domain/report"
)

func buildStatistics(
	today string,
	employees []employee.Employee,
	rows []attendance.Attendance,
	leaves []leave.LeaveRequest,
	departments []department.Department,
) report.Statistics {
	stats := report.Statistics{
		TotalEmployees:   len(employees),
		TotalDepartments: len(departments),
	}

	for _, row := range rows {
		if row.Date == today && row.Status == attendance.StatusPresent {
			stats.PresentToday++
		}
	}
	// Anyone without an explicit Present record today counts as absent,
	// including employees with no attendance row at all.
	stats.AbsentToday = stats.TotalEmployees - stats.PresentToday

	for _, l := range leaves {
		switch l.Status {
		case leave.StatusPending:
			stats.PendingLeaves++
		case leave.StatusApproved:
			stats.ApprovedLeaves++
		case leave.StatusRejected:
			stats.RejectedLeaves++
		}
	}

	return stats
}

// buildDepartmentStats maps department name to employee count. Employees
// with an empty department are skipped.
func buildDepartmentStats(employees []employee.Employee) map[string]int {
	stats := make(map[string]int)
	for _, emp := range employees {
		if emp.Department != "" {
			stats[emp.Department]++
		}
	}
	return stats
}

// buildMonthlySummary buckets attendance rows by YYYY-MM in a single pass.
func buildMonthlySummary(rows []attendance.Attendance) map[string]report.MonthlySummary {
	summary := make(map[string]report.MonthlySummary)
	for _, row := range rows {
		if len(row.Date) < 7 {
			continue
		}
		month := row.Date[:7]
		bucket := summary[month]
		switch row.Status {
		case attendance.StatusPresent:
			bucket.Present++
		case attendance.StatusAbsent:
			bucket.Absent++
		case attendance.StatusLeave:
			bucket.Leave++
		}
		summary[month] = bucket
	}
	return summary
}

func employeeStatistics(rows []attendance.Attendance, leaves []leave.LeaveRequest) report.EmployeeStatistics {
	stats := report.EmployeeStatistics{
		TotalDays:   len(rows),
		TotalLeaves: len(leaves),
	}

	for _, row := range rows {
		switch row.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusLeave:
			stats.LeaveDays++
		}
	}

	stats.AttendanceRate = attendanceRate(stats.PresentDays, stats.TotalDays)

	for _, l := range leaves {
		switch l.Status {
		case leave.StatusPending:
			stats.PendingLeaves++
		case leave.StatusApproved:
			stats.ApprovedLeaves++
		case leave.StatusRejected:
			stats.RejectedLeaves++
		}
	}

	return stats
}

// attendanceRate returns present/total as a percentage rounded to two
// decimals, and 0 for an empty record set.
func attendanceRate(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

// monthRange returns the half-open window [first-of-month, first-of-next-month)
// as date strings. time.Date normalizes the month, so December rolls over to
// January of the next year.
func monthRange(month, year int) (from, before string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), first.AddDate(0, 1, 0).Format("2006-01-02")
}

// buildCalendar groups rows by date, keeping only dates inside the
// half-open [from, before) window.
func buildCalendar(rows []attendance.Attendance, from, before string) map[string]*report.CalendarDay {
	calendar := make(map[string]*report.CalendarDay)
	for _, row := range rows {
		if row.Date < from || row.Date >= before {
			continue
		}
		day, ok := calendar[row.Date]
		if !ok {
			day = &report.CalendarDay{}
			calendar[row.Date] = day
		}
		day.Total++
		switch row.Status {
		case attendance.StatusPresent:
			day.Present++
		case attendance.StatusAbsent:
			day.Absent++
		case attendance.StatusLeave:
			day.Leave++
		}
	}
	return calendar
}
