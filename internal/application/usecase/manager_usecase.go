package usecase

import (
	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/application/report"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// ManagerUseCase casos de uso sobre perfiles de manager y sus dependientes.
type ManagerUseCase struct {
	repo        repository.ManagerRepository
	staffRepo   repository.StaffRepository
	productRepo repository.ProductRepository
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(
	repo repository.ManagerRepository,
	staffRepo repository.StaffRepository,
	productRepo repository.ProductRepository,
) *ManagerUseCase {
	return &ManagerUseCase{repo: repo, staffRepo: staffRepo, productRepo: productRepo}
}

// GetByID obtiene un manager por ID.
func (uc *ManagerUseCase) GetByID(id string) (*dto.ManagerResponse, error) {
	manager, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrNotFound
	}
	return toManagerResponse(manager), nil
}

// List lista managers con paginación.
func (uc *ManagerUseCase) List(limit, offset int) ([]dto.ManagerResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ManagerResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toManagerResponse(m))
	}
	return items, nil
}

// Update actualiza email y departamento del manager.
func (uc *ManagerUseCase) Update(id string, in dto.UpdateManagerRequest) (*dto.ManagerResponse, error) {
	manager, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil {
		manager.Email = *in.Email
	}
	if in.Department != nil {
		manager.Department = *in.Department
	}
	if err := uc.repo.Update(manager); err != nil {
		return nil, err
	}
	return toManagerResponse(manager), nil
}

// Staff lista el personal a cargo del manager.
func (uc *ManagerUseCase) Staff(id string) ([]dto.StaffResponse, error) {
	manager, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.staffRepo.ListByManager(id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStaffResponse(s))
	}
	return items, nil
}

// Products lista los productos asignados al manager.
func (uc *ManagerUseCase) Products(id string) ([]dto.ProductResponse, error) {
	manager, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.productRepo.ListByManager(id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, report.ToProductResponse(p))
	}
	return items, nil
}

// Delete elimina el manager. Productos y staff dependientes quedan con la
// referencia en NULL (detach), nunca se eliminan.
func (uc *ManagerUseCase) Delete(id string) error {
	manager, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if manager == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toManagerResponse(m *entity.Manager) *dto.ManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManagerResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		Email:      m.Email,
		Department: m.Department,
	}
}
