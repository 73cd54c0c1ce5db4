package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Shayanthavi/employee-management-go/internal/domain/report"
	"github.com/Shayanthavi/employee-management-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetReports(w http.ResponseWriter, r *http.Request)
	GetEmployeeReport(w http.ResponseWriter, r *http.Request)
	GetAttendanceCalendar(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// queryID parses an optional numeric query parameter; 0 means absent.
func queryID(r *http.Request, name string) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// GetReports handles GET /reports
func (h *reportHandlerImpl) GetReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := report.Filter{
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
		EmployeeID: queryID(r, "employeeId"),
		Department: q.Get("departmentId"),
	}

	result, err := h.reportService.GetReports(r.Context(), filter)
	if err != nil {
		slog.Error("Get reports error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeReport handles GET /reports/employee/{id}
func (h *reportHandlerImpl) GetEmployeeReport(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id")
		return
	}

	q := r.URL.Query()
	dateRange := report.DateRange{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}

	result, err := h.reportService.GetEmployeeReport(r.Context(), id, dateRange)
	if err != nil {
		slog.Error("Get employee report error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceCalendar handles GET /reports/calendar
func (h *reportHandlerImpl) GetAttendanceCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.CalendarRequest{
		Month:      q.Get("month"),
		Year:       q.Get("year"),
		EmployeeID: queryID(r, "employeeId"),
	}

	result, err := h.reportService.GetAttendanceCalendar(r.Context(), req)
	if err != nil {
		slog.Error("Get attendance calendar error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
