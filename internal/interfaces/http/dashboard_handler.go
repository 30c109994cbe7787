package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// DashboardHandler maneja los endpoints del dashboard y la exportación.
type DashboardHandler struct {
	uc     *analytics.DashboardUseCase
	export *analytics.ExportUseCase
	log    *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, export *analytics.ExportUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, export: export, log: log}
}

// GetSummary godoc
// @Summary      Dashboard
// @Description  Tabla de empresas, detalle de la matriz y serie de ingresos. parent es null si no hay matriz.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

// GetRevenueSeries godoc
// @Summary      Serie de ingresos por fecha
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.RevenuePoint]
// @Router       /api/dashboard/revenue-series [get]
func (h *DashboardHandler) GetRevenueSeries(c *fiber.Ctx) error {
	points, err := h.uc.RevenueSeries(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewList(points))
}

// GetReport godoc
// @Summary      Reporte PDF del dashboard
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}    file  "PDF"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	doc, err := h.uc.Report(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="dashboard_report.pdf"`)
	return c.Send(doc)
}

// ExportContracts godoc
// @Summary      Exportar contratos a CSV
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string  "CSV con cabecera"
// @Router       /api/export/contracts.csv [get]
func (h *DashboardHandler) ExportContracts(c *fiber.Ctx) error {
	data, err := h.export.ContractsCSV(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, analytics.ContractsCSVFilename))
	return c.Send(data)
}
