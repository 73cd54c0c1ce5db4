package dashboard

import (
	"context"
	"time"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/dashboard"
	"github.com/Shayanthavi/employee-management-go/internal/domain/employee"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// GetStats implements dashboard.DashboardService. The three entity lists are
// independent queries, so they load in parallel; everything else is computed
// in memory from those lists.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	var (
		employees []employee.Employee
		rows      []attendance.Attendance
		leaves    []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, employee.EmployeeFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.attendanceRepo.List(gCtx, attendance.AttendanceFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.List(gCtx, leave.LeaveFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	return &dashboard.StatsResponse{
		Summary:               buildSummary(len(employees), rows, leaves, today),
		RecentAttendance:      takeRecentAttendance(rows, recentLimit),
		RecentLeaves:          takeRecentLeaves(leaves, recentLimit),
		EmployeesOnLeaveToday: onLeaveToday(leaves, today),
		AttendanceTrend:       buildTrend(rows, now),
	}, nil
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (*dashboard.SummaryResponse, error) {
	today := time.Now().Format("2006-01-02")

	var (
		employees []employee.Employee
		todayRows []attendance.Attendance
		leaves    []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, employee.EmployeeFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		todayRows, err = s.attendanceRepo.List(gCtx, attendance.AttendanceFilter{From: today, To: today})
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.List(gCtx, leave.LeaveFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pending := 0
	for _, l := range leaves {
		if l.Status == leave.StatusPending {
			pending++
		}
	}

	return &dashboard.SummaryResponse{
		TotalEmployees:   len(employees),
		TodaysAttendance: len(todayRows),
		PendingLeaves:    pending,
	}, nil
}
