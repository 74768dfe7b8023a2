package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-core/internal/application/report"
)

// ReportHandler reportes derivados de inventario.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryReport godoc
// @Summary      Conteo de logs por acción y movimiento neto por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReport
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventoryReport(c *fiber.Ctx) error {
	rep, err := h.uc.InventoryReport()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

// InventoryStatistics godoc
// @Summary      Totales generales y productos en stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatistics
// @Router       /api/reports/statistics [get]
func (h *ReportHandler) InventoryStatistics(c *fiber.Ctx) error {
	stats, err := h.uc.InventoryStatistics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
