package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/dashboard"
)

// DashboardHandler serves the aggregated dashboard numbers
type DashboardHandler struct {
	dashboardService *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Lead counts by status, pipeline totals by stage, open cases and today's activities
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboard.Stats
// @Failure 500 {object} models.ErrorResponse "Internal error"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	stats, err := h.dashboardService.GetStats(ctx)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
