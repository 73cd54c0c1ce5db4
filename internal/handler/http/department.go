package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Shayanthavi/employee-management-go/internal/domain/department"
	"github.com/Shayanthavi/employee-management-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{departmentService: departmentService}
}

// CreateDepartment handles POST /departments
func (h *departmentHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("Add department error", "error", err)
		response.HandleCRUDError(w, err, "Error adding department")
		return
	}

	response.Created(w, "Department created successfully", result)
}

// ListDepartments handles GET /departments
func (h *departmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("Get departments error", "error", err)
		response.HandleCRUDError(w, err, "Error fetching departments")
		return
	}

	response.SuccessWithMessage(w, "Operation successful", result)
}
