package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// CreateAttendance handles POST /attendance
func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.attendanceService.CreateAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Create attendance error", "error", err)
		response.HandleCRUDError(w, err, "Error creating attendance")
		return
	}

	response.Created(w, "Attendance created successfully", result)
}

// ListAttendance handles GET /attendance
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		slog.Error("Get attendance error", "error", err)
		response.HandleCRUDError(w, err, "Error fetching attendance")
		return
	}

	response.SuccessWithMessage(w, "Operation successful", result)
}

// GetAttendance handles GET /attendance/{id}
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Invalid attendance id")
		return
	}

	result, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		slog.Error("Get attendance error", "error", err, "id", id)
		response.HandleCRUDError(w, err, "Error fetching attendance")
		return
	}

	response.SuccessWithMessage(w, "Operation successful", result)
}

// UpdateAttendance handles PATCH /attendance/{id}
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Invalid attendance id")
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.attendanceService.UpdateAttendance(r.Context(), id, req)
	if err != nil {
		slog.Error("Update attendance error", "error", err, "id", id)
		response.HandleCRUDError(w, err, "Error updating attendance")
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// DeleteAttendance handles DELETE /attendance/{id}
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Invalid attendance id")
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		slog.Error("Delete attendance error", "error", err, "id", id)
		response.HandleCRUDError(w, err, "Error deleting attendance")
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}
