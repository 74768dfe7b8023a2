package repository

import "github.com/invorya/inventario-core/internal/domain/entity"

// ManagerRepository puerto de persistencia para perfiles de manager.
// Delete pone en NULL las referencias de productos y staff dependientes
// (detach, no cascada) antes de eliminar la fila.
type ManagerRepository interface {
	Create(manager *entity.Manager) error
	GetByID(id string) (*entity.Manager, error)
	GetByUserID(userID string) (*entity.Manager, error)
	List(limit, offset int) ([]*entity.Manager, error)
	Update(manager *entity.Manager) error
	Delete(id string) error
}
