package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-core/internal/application/usecase"
)

// LogHandler listados de solo lectura del log de auditoría.
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List godoc
// @Summary      Listar logs de inventario, más recientes primero
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "filtrar por producto"
// @Param        staff_id    query  string  false  "filtrar por staff"
// @Success      200  {array}  dto.InventoryLogResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	logs, err := h.uc.List(c.Query("product_id"), c.Query("staff_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}
