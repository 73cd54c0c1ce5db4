package dashboard

import (
	"time"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/dashboard"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
)

const (
	recentLimit = 5
	trendDays   = 14
)

// All date comparisons here rely on YYYY-MM-DD strings ordering the same
// way lexicographically and chronologically.

func buildSummary(totalEmployees int, rows []attendance.Attendance, leaves []leave.LeaveRequest, today string) dashboard.Summary {
	summary := dashboard.Summary{
		TotalEmployees:  totalEmployees,
		ActiveEmployees: totalEmployees,
		TotalLeaves:     len(leaves),
	}

	for _, row := range rows {
		if row.Date == today {
			summary.TodaysAttendance++
		}
	}
	for _, l := range leaves {
		if l.Status == leave.StatusPending {
			summary.PendingLeaves++
		}
	}

	return summary
}

// takeRecent returns the first n elements of an already-sorted list.
func takeRecentAttendance(rows []attendance.Attendance, n int) []attendance.Attendance {
	if len(rows) < n {
		n = len(rows)
	}
	return rows[:n]
}

func takeRecentLeaves(leaves []leave.LeaveRequest, n int) []leave.LeaveRequest {
	if len(leaves) < n {
		n = len(leaves)
	}
	return leaves[:n]
}

// onLeaveToday selects leave requests whose range covers today and that
// were not rejected. Pending requests count as "on leave", matching the
// dashboard the front-end was built against.
func onLeaveToday(leaves []leave.LeaveRequest, today string) []leave.LeaveRequest {
	result := []leave.LeaveRequest{}
	for _, l := range leaves {
		if l.StartDate <= today && today <= l.EndDate && l.Status != leave.StatusRejected {
			result = append(result, l)
		}
	}
	return result
}

// buildTrend produces one point per calendar day for the trailing trendDays
// days, oldest first, counting Present rows on each day.
func buildTrend(rows []attendance.Attendance, today time.Time) []dashboard.TrendPoint {
	presentByDate := make(map[string]int)
	for _, row := range rows {
		if row.Status == attendance.StatusPresent {
			presentByDate[row.Date]++
		}
	}

	points := make([]dashboard.TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		points = append(points, dashboard.TrendPoint{
			Date:    date,
			Present: presentByDate[date],
		})
	}
	return points
}
