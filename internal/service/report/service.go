package report

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/department"
	"github.com/Shayanthavi/employee-management-go/internal/domain/employee"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/Shayanthavi/employee-management-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	departmentRepo department.DepartmentRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	departmentRepo department.DepartmentRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		departmentRepo: departmentRepo,
	}
}

// GetReports implements report.ReportService. Employees are narrowed by the
// id/department filter, attendance by the date range; leave requests and
// departments always load in full. The date range only applies when both
// ends are given, matching the system this replaces.
func (s *ReportServiceImpl) GetReports(ctx context.Context, filter report.Filter) (*report.ReportsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	attFilter := attendance.AttendanceFilter{}
	if filter.StartDate != "" && filter.EndDate != "" {
		attFilter.From = filter.StartDate
		attFilter.To = filter.EndDate
	}

	var (
		employees   []employee.Employee
		rows        []attendance.Attendance
		leaves      []leave.LeaveRequest
		departments []department.Department
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, employee.EmployeeFilter{
			ID:         filter.EmployeeID,
			Department: filter.Department,
			SortByName: true,
		})
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.attendanceRepo.List(gCtx, attFilter)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.List(gCtx, leave.LeaveFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = s.departmentRepo.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")

	return &report.ReportsResponse{
		Statistics:        buildStatistics(today, employees, rows, leaves, departments),
		Employees:         employees,
		Attendance:        rows,
		Leaves:            leaves,
		Departments:       departments,
		DepartmentStats:   buildDepartmentStats(employees),
		MonthlyAttendance: buildMonthlySummary(rows),
	}, nil
}

// GetEmployeeReport implements report.ReportService. Attendance and leave
// rows are matched on the employee's name, not id; rows written under an
// old name are invisible after a rename.
func (s *ReportServiceImpl) GetEmployeeReport(ctx context.Context, employeeID int64, dateRange report.DateRange) (*report.EmployeeReportResponse, error) {
	if err := dateRange.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	attFilter := attendance.AttendanceFilter{EmployeeName: emp.Name}
	if dateRange.StartDate != "" && dateRange.EndDate != "" {
		attFilter.From = dateRange.StartDate
		attFilter.To = dateRange.EndDate
	}

	var (
		rows   []attendance.Attendance
		leaves []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rows, err = s.attendanceRepo.List(gCtx, attFilter)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.List(gCtx, leave.LeaveFilter{EmployeeName: emp.Name})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &report.EmployeeReportResponse{
		Employee:   emp,
		Attendance: rows,
		Leaves:     leaves,
		Statistics: employeeStatistics(rows, leaves),
	}, nil
}

// GetAttendanceCalendar implements report.ReportService. An employeeId that
// resolves to nothing silently falls back to the whole month, which is what
// the previous system did.
func (s *ReportServiceImpl) GetAttendanceCalendar(ctx context.Context, req report.CalendarRequest) (map[string]*report.CalendarDay, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	month, _ := strconv.Atoi(req.Month)
	year, _ := strconv.Atoi(req.Year)
	from, before := monthRange(month, year)

	filter := attendance.AttendanceFilter{From: from, Before: before}

	if req.EmployeeID != 0 {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		switch {
		case err == nil:
			filter.EmployeeName = emp.Name
		case errors.Is(err, employee.ErrEmployeeNotFound):
			// fall through unfiltered
		default:
			return nil, err
		}
	}

	rows, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return buildCalendar(rows, from, before), nil
}
