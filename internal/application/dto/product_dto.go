package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=50"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	Quantity      int64           `json:"quantity" validate:"min=0"`
	LowThreshold  int64           `json:"low_threshold"`
	HighThreshold int64           `json:"high_threshold"`
	Price         decimal.Decimal `json:"price"`
	ManagerID     *string         `json:"manager_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto.
// La cantidad no se toca aquí: solo muta vía el motor de stock.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category" validate:"omitempty,max=100"`
	LowThreshold  *int64           `json:"low_threshold"`
	HighThreshold *int64           `json:"high_threshold"`
	Price         *decimal.Decimal `json:"price"`
	ManagerID     *string          `json:"manager_id" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto con su estado de stock derivado.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Quantity      int64           `json:"quantity"`
	LowThreshold  int64           `json:"low_threshold"`
	HighThreshold int64           `json:"high_threshold"`
	Price         decimal.Decimal `json:"price"`
	ManagerID     *string         `json:"manager_id"`
	StockStatus   string          `json:"stock_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BarcodeResponse salida del código de barras de un producto.
type BarcodeResponse struct {
	Barcode string `json:"barcode"`
}
