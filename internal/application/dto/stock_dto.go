package dto

import "time"

// UpdateStockRequest entrada para mutar el stock de un producto.
type UpdateStockRequest struct {
	Quantity int64  `json:"quantity" validate:"required,min=0"`
	Action   string `json:"action" validate:"required,oneof=add remove adjust"`
	Notes    string `json:"notes"`
}

// StockResponse estado actual de stock de un producto.
type StockResponse struct {
	Quantity int64  `json:"quantity"`
	Status   string `json:"status"`
}

// UpdateStockResponse salida de una mutación de stock.
type UpdateStockResponse struct {
	NewQuantity int64  `json:"new_quantity"`
	Status      string `json:"status"`
}

// InventoryLogResponse salida de un registro del log de auditoría.
type InventoryLogResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ActionType     string    `json:"action_type"`
	QuantityChange int64     `json:"quantity_change"`
	PerformedBy    *string   `json:"performed_by"`
	Notes          string    `json:"notes,omitempty"`
	Date           time.Time `json:"date"`
}
