package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/application/report"
	"github.com/invorya/inventario-core/internal/application/usecase"
)

// ManagerHandler maneja perfiles de manager y sus vistas derivadas.
type ManagerHandler struct {
	uc       *usecase.ManagerUseCase
	reportUC *report.ReportUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *usecase.ManagerUseCase, reportUC *report.ReportUseCase) *ManagerHandler {
	return &ManagerHandler{uc: uc, reportUC: reportUC}
}

// List godoc
// @Summary      Listar managers
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ManagerResponse
// @Router       /api/managers [get]
func (h *ManagerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	managers, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(managers)
}

// GetByID godoc
// @Summary      Obtener un manager
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManagerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/{id} [get]
func (h *ManagerHandler) GetByID(c *fiber.Ctx) error {
	manager, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(manager)
}

// Update godoc
// @Summary      Actualizar un manager
// @Tags         managers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ManagerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/{id} [put]
func (h *ManagerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	manager, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(manager)
}

// Staff godoc
// @Summary      Personal a cargo del manager
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StaffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/{id}/staff [get]
func (h *ManagerHandler) Staff(c *fiber.Ctx) error {
	staff, err := h.uc.Staff(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

// Products godoc
// @Summary      Productos asignados al manager
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/{id}/products [get]
func (h *ManagerHandler) Products(c *fiber.Ctx) error {
	products, err := h.uc.Products(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Report godoc
// @Summary      Totales de staff y productos del manager
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManagerReport
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/{id}/report [get]
func (h *ManagerHandler) Report(c *fiber.Ctx) error {
	rep, err := h.reportUC.ManagerReport(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

// Delete godoc
// @Summary      Eliminar un manager (productos y staff quedan sin manager, no se eliminan)
// @Tags         managers
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/{id} [delete]
func (h *ManagerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
