package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/Shayanthavi/employee-management-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ListLeave(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	UpdateLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// CreateLeave handles POST /leave
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		slog.Error("Create leave error", "error", err)
		response.HandleCRUDError(w, err, "Error creating leave request")
		return
	}

	response.Created(w, "Leave created successfully", result)
}

// ListLeave handles GET /leave
func (h *leaveHandlerImpl) ListLeave(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListLeave(r.Context())
	if err != nil {
		slog.Error("Get leave error", "error", err)
		response.HandleCRUDError(w, err, "Error fetching leave requests")
		return
	}

	response.SuccessWithMessage(w, "Operation successful", result)
}

// GetLeave handles GET /leave/{id}
func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Invalid leave id")
		return
	}

	result, err := h.leaveService.GetLeave(r.Context(), id)
	if err != nil {
		slog.Error("Get leave error", "error", err, "id", id)
		response.HandleCRUDError(w, err, "Error fetching leave request")
		return
	}

	response.SuccessWithMessage(w, "Operation successful", result)
}

// UpdateLeave handles PATCH /leave/{id}
func (h *leaveHandlerImpl) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Invalid leave id")
		return
	}

	var req leave.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.leaveService.UpdateLeave(r.Context(), id, req)
	if err != nil {
		slog.Error("Update leave error", "error", err, "id", id)
		response.HandleCRUDError(w, err, "Error updating leave request")
		return
	}

	response.SuccessWithMessage(w, "Leave updated successfully", result)
}

// DeleteLeave handles DELETE /leave/{id}
func (h *leaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Invalid leave id")
		return
	}

	if err := h.leaveService.DeleteLeave(r.Context(), id); err != nil {
		slog.Error("Delete leave error", "error", err, "id", id)
		response.HandleCRUDError(w, err, "Error deleting leave request")
		return
	}

	response.SuccessWithMessage(w, "Leave deleted successfully", nil)
}
