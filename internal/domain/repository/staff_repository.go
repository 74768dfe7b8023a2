package repository

import "github.com/invorya/inventario-core/internal/domain/entity"

// StaffRepository puerto de persistencia para perfiles de staff.
// Delete pone en NULL performed_by en los logs del staff antes de eliminar.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id string) (*entity.Staff, error)
	GetByUserID(userID string) (*entity.Staff, error)
	List(limit, offset int) ([]*entity.Staff, error)
	ListByManager(managerID string) ([]*entity.Staff, error)
	CountByManager(managerID string) (int64, error)
	Update(staff *entity.Staff) error
	Delete(id string) error
}
