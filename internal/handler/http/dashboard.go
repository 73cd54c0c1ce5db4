package http

import (
	"log/slog"
	"net/http"

	"github.com/Shayanthavi/employee-management-go/internal/domain/dashboard"
	"github.com/Shayanthavi/employee-management-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetStats returns the full dashboard payload
	GetStats(w http.ResponseWriter, r *http.Request)
	// GetSummary returns the lightweight counter payload
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		slog.Error("Get dashboard stats error", "error", err)
		response.HandleCRUDError(w, err, "Error fetching dashboard statistics")
		return
	}

	response.SuccessWithMessage(w, "Dashboard statistics fetched successfully", result)
}

// GetSummary handles GET /dashboard/summary
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		slog.Error("Get dashboard summary error", "error", err)
		response.HandleCRUDError(w, err, "Error fetching summary")
		return
	}

	response.Success(w, result)
}
