package dashboard

import (
	"testing"
	"time"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	today := "2024-03-15"
	rows := []attendance.Attendance{
		{ID: 1, EmployeeName: "Alice", Date: "2024-03-15", Status: attendance.StatusPresent},
		{ID: 2, EmployeeName: "Bob", Date: "2024-03-15", Status: attendance.StatusAbsent},
		{ID: 3, EmployeeName: "Alice", Date: "2024-03-14", Status: attendance.StatusPresent},
	}
	leaves := []leave.LeaveRequest{
		{ID: 1, Status: leave.StatusPending},
		{ID: 2, Status: leave.StatusApproved},
	}

	summary := buildSummary(3, rows, leaves, today)

	assert.Equal(t, 3, summary.TotalEmployees)
	assert.Equal(t, 3, summary.ActiveEmployees)
	// Every row dated today counts, whatever its status.
	assert.Equal(t, 2, summary.TodaysAttendance)
	assert.Equal(t, 2, summary.TotalLeaves)
	assert.Equal(t, 1, summary.PendingLeaves)
}

func TestTakeRecent(t *testing.T) {
	rows := []attendance.Attendance{
		{ID: 7}, {ID: 6}, {ID: 5}, {ID: 4}, {ID: 3}, {ID: 2}, {ID: 1},
	}

	recent := takeRecentAttendance(rows, recentLimit)
	assert.Len(t, recent, 5)
	assert.Equal(t, int64(7), recent[0].ID)

	short := takeRecentAttendance(rows[:2], recentLimit)
	assert.Len(t, short, 2)

	leaves := []leave.LeaveRequest{{ID: 1}, {ID: 2}}
	assert.Len(t, takeRecentLeaves(leaves, recentLimit), 2)
}

func TestOnLeaveToday(t *testing.T) {
	today := "2024-03-15"
	leaves := []leave.LeaveRequest{
		{ID: 1, StartDate: "2024-03-10", EndDate: "2024-03-20", Status: leave.StatusApproved},
		{ID: 2, StartDate: "2024-03-15", EndDate: "2024-03-15", Status: leave.StatusPending},
		{ID: 3, StartDate: "2024-03-10", EndDate: "2024-03-20", Status: leave.StatusRejected},
		{ID: 4, StartDate: "2024-03-16", EndDate: "2024-03-20", Status: leave.StatusApproved},
		{ID: 5, StartDate: "2024-03-01", EndDate: "2024-03-14", Status: leave.StatusApproved},
	}

	onLeave := onLeaveToday(leaves, today)

	assert.Len(t, onLeave, 2)
	assert.Equal(t, int64(1), onLeave[0].ID)
	assert.Equal(t, int64(2), onLeave[1].ID)
}

func TestBuildTrend(t *testing.T) {
	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	rows := []attendance.Attendance{
		{Date: "2024-03-15", Status: attendance.StatusPresent},
		{Date: "2024-03-15", Status: attendance.StatusPresent},
		{Date: "2024-03-15", Status: attendance.StatusAbsent},
		{Date: "2024-03-02", Status: attendance.StatusPresent},
		{Date: "2024-03-01", Status: attendance.StatusPresent}, // outside the window
	}

	points := buildTrend(rows, today)

	assert.Len(t, points, trendDays)
	// Oldest first: 14 days ending today.
	assert.Equal(t, "2024-03-02", points[0].Date)
	assert.Equal(t, 1, points[0].Present)
	assert.Equal(t, "2024-03-15", points[len(points)-1].Date)
	assert.Equal(t, 2, points[len(points)-1].Present)
	assert.Equal(t, 0, points[1].Present)
}
