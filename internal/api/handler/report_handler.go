package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plastifind/collection-system/internal/api/middleware"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// ReportHandler serves the dashboard aggregation snapshot.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard handles GET /v1/reports/dashboard.
//
// @Summary      Aggregated zone and material statistics
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardReport
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	report, err := h.service.DashboardReport(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
