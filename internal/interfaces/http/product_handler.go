package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/application/stock"
	"github.com/invorya/inventario-core/internal/application/usecase"
)

// ProductHandler maneja productos y sus vistas de stock/logs.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	stockUC *stock.UpdateStockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stockUC *stock.UpdateStockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stockUC: stockUC}
}

// Create godoc
// @Summary      Crear un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	products, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetByID godoc
// @Summary      Obtener un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// Update godoc
// @Summary      Actualizar un producto (la cantidad solo muta vía stock)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// Delete godoc
// @Summary      Eliminar un producto (sus logs caen en cascada)
// @Tags         products
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetStock godoc
// @Summary      Cantidad actual y estado derivado de stock
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *ProductHandler) GetStock(c *fiber.Ctx) error {
	result, err := h.stockUC.GetStock(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse{Quantity: result.NewQuantity, Status: result.Status})
}

// UpdateStock godoc
// @Summary      Mutar stock (add/remove/adjust) con log de auditoría
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "quantity, action (add|remove|adjust), notes"
// @Success      200   {object}  dto.UpdateStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.stockUC.UpdateStock(c.Context(), stock.UpdateStockInput{
		ProductID:    c.Params("id"),
		Delta:        in.Quantity,
		Action:       in.Action,
		Notes:        in.Notes,
		CallerUserID: userID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UpdateStockResponse{NewQuantity: result.NewQuantity, Status: result.Status})
}

// Logs godoc
// @Summary      Logs de un producto, más recientes primero
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/logs [get]
func (h *ProductHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.uc.Logs(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// Barcode godoc
// @Summary      Código de barras derivado del SKU
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BarcodeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/barcode [get]
func (h *ProductHandler) Barcode(c *fiber.Ctx) error {
	barcode, err := h.uc.Barcode(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(barcode)
}
