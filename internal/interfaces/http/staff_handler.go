package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/application/usecase"
)

// StaffHandler maneja perfiles de staff y sus vistas derivadas.
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Create godoc
// @Summary      Crear un perfil de staff para un usuario existente
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.StaffResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/staff [post]
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	staff, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

// List godoc
// @Summary      Listar perfiles de staff
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StaffResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	staff, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

// GetByID godoc
// @Summary      Obtener un staff
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StaffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id} [get]
func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	staff, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

// Update godoc
// @Summary      Actualizar un staff
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.StaffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id} [put]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	staff, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

// Logs godoc
// @Summary      Logs realizados por el staff, más recientes primero
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id}/logs [get]
func (h *StaffHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.uc.Logs(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// Products godoc
// @Summary      Productos del manager del staff
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id}/products [get]
func (h *StaffHandler) Products(c *fiber.Ctx) error {
	products, err := h.uc.Products(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Delete godoc
// @Summary      Eliminar un staff (sus logs quedan con performer en null)
// @Tags         staff
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id} [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
