package repository

import "github.com/invorya/inventario-core/internal/domain/entity"

// InventoryLogRepository puerto de persistencia para el log de auditoría.
// Solo inserta y lee: el log es append-only, no hay Update ni Delete directo.
// Los listados devuelven los registros más recientes primero.
type InventoryLogRepository interface {
	Create(log *entity.InventoryLog) error
	ListByProduct(productID string) ([]*entity.InventoryLog, error)
	ListByStaff(staffID string) ([]*entity.InventoryLog, error)
	ListAll() ([]*entity.InventoryLog, error)
	CountAll() (int64, error)
}
