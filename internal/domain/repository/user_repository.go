package repository

import "github.com/invorya/inventario-core/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Delete elimina también el perfil (Manager o Staff) en la misma transacción.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateRole(id, role string) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
