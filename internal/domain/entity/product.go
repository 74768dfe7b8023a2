package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de stock. Nunca se persisten: se calculan con CheckStock.
const (
	StockLow    = "low"
	StockNormal = "normal"
	StockHigh   = "high"
)

// Product representa un ítem del inventario con umbrales de stock.
// ManagerID es opcional: eliminar al manager lo deja en nil.
type Product struct {
	ID            string
	Name          string
	Description   string
	SKU           string // único
	Category      string
	Quantity      int64 // invariante: >= 0 después de toda mutación
	LowThreshold  int64
	HighThreshold int64
	Price         decimal.Decimal
	ManagerID     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CheckStock deriva el estado actual a partir de la cantidad y los umbrales.
// "low" se evalúa primero: si low_threshold >= high_threshold gana "low".
func (p *Product) CheckStock() string {
	if p.Quantity <= p.LowThreshold {
		return StockLow
	}
	if p.Quantity >= p.HighThreshold {
		return StockHigh
	}
	return StockNormal
}
