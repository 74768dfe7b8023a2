package repository

import "github.com/invorya/inventario-core/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro
// de una transacción (repositorio atado a tx vía el TxRunner).
// Delete elimina en cascada los logs del producto en la misma transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	ListByManager(managerID string) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	CountAll() (int64, error)
	CountByManager(managerID string) (int64, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
}
