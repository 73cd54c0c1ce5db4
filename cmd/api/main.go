package main

import (
	"fmt"
	"net/http"

	"github.com/Shayanthavi/employee-management-go/internal/config"
	appHTTP "github.com/Shayanthavi/employee-management-go/internal/handler/http"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/database"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/jwt"
	"github.com/Shayanthavi/employee-management-go/internal/repository/postgresql"
	attendanceService "github.com/Shayanthavi/employee-management-go/internal/service/attendance"
	authService "github.com/Shayanthavi/employee-management-go/internal/service/auth"
	dashboardService "github.com/Shayanthavi/employee-management-go/internal/service/dashboard"
	departmentService "github.com/Shayanthavi/employee-management-go/internal/service/department"
	employeeService "github.com/Shayanthavi/employee-management-go/internal/service/employee"
	leaveService "github.com/Shayanthavi/employee-management-go/internal/service/leave"
	reportService "github.com/Shayanthavi/employee-management-go/internal/service/report"
	userService "github.com/Shayanthavi/employee-management-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRepo, departmentRepo)
	userSvc := userService.NewUserService(userRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		User:       appHTTP.NewUserHandler(userSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
