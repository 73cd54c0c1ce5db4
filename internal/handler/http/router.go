package http

import (
	"log/slog"
	"os"

	"github.com/Shayanthavi/employee-management-go/internal/config"
	"github.com/Shayanthavi/employee-management-go/internal/handler/http/middleware"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Department DepartmentHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	User       UserHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-management"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
		})

		// The singular/plural path split is what the existing front-end
		// calls; it stays.
		r.Post("/employee", h.Employee.CreateEmployee)
		r.Get("/employees", h.Employee.ListEmployees)
		r.Route("/employee/{id}", func(r chi.Router) {
			r.Get("/", h.Employee.GetEmployee)
			r.Patch("/", h.Employee.UpdateEmployee)
			r.Delete("/", h.Employee.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.ListAttendance)
			r.Post("/", h.Attendance.CreateAttendance)
			r.Get("/{id}", h.Attendance.GetAttendance)
			r.Patch("/{id}", h.Attendance.UpdateAttendance)
			r.Delete("/{id}", h.Attendance.DeleteAttendance)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/", h.Leave.ListLeave)
			r.Post("/", h.Leave.CreateLeave)
			r.Get("/{id}", h.Leave.GetLeave)
			r.Patch("/{id}", h.Leave.UpdateLeave)
			r.Delete("/{id}", h.Leave.DeleteLeave)
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.Department.ListDepartments)
			r.Post("/", h.Department.CreateDepartment)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", h.Dashboard.GetStats)
			r.Get("/summary", h.Dashboard.GetSummary)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.Report.GetReports)
				r.Get("/employee/{id}", h.Report.GetEmployeeReport)
				r.Get("/calendar", h.Report.GetAttendanceCalendar)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.User.GetProfile)
				r.Patch("/", h.User.UpdateProfile)
			})
			r.Post("/change-password", h.User.ChangePassword)
		})
	})

	return r
}
