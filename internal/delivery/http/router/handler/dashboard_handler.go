package handler

import (
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the staff reporting handlers.
type DashboardHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.AnalyticsUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard returns the admin dashboard aggregates and series.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard retrieved successfully")
}

// GetProductivity returns the per-employee productivity report.
func (h *DashboardHandler) GetProductivity(c echo.Context) error {
	report, err := h.uc.EmployeeProductivity(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Productivity report retrieved successfully")
}

// GetFinancialReport returns the revenue and invoice summary.
func (h *DashboardHandler) GetFinancialReport(c echo.Context) error {
	report, err := h.uc.FinancialReport(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Financial report retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
