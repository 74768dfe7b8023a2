package usecase

import (
	"github.com/google/uuid"

	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/application/report"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// StaffUseCase casos de uso sobre perfiles de staff.
type StaffUseCase struct {
	repo        repository.StaffRepository
	managerRepo repository.ManagerRepository
	productRepo repository.ProductRepository
	logRepo     repository.InventoryLogRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(
	repo repository.StaffRepository,
	managerRepo repository.ManagerRepository,
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) *StaffUseCase {
	return &StaffUseCase{repo: repo, managerRepo: managerRepo, productRepo: productRepo, logRepo: logRepo}
}

// Create crea un perfil de staff para un usuario existente.
func (uc *StaffUseCase) Create(in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if in.UserID == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.repo.GetByUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	if in.ManagerID != nil {
		manager, err := uc.managerRepo.GetByID(*in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrNotFound
		}
	}
	position := in.Position
	if position == "" {
		position = entity.DefaultStaffPosition
	}
	shift := in.Shift
	if shift == "" {
		shift = entity.DefaultStaffShift
	}
	staff := &entity.Staff{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		ManagerID: in.ManagerID,
		Position:  position,
		Shift:     shift,
	}
	if err := uc.repo.Create(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// GetByID obtiene un staff por ID.
func (uc *StaffUseCase) GetByID(id string) (*dto.StaffResponse, error) {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(staff), nil
}

// List lista perfiles de staff con paginación.
func (uc *StaffUseCase) List(limit, offset int) ([]dto.StaffResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStaffResponse(s))
	}
	return items, nil
}

// Update actualiza manager, posición y turno del staff.
func (uc *StaffUseCase) Update(id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	if in.ManagerID != nil {
		manager, err := uc.managerRepo.GetByID(*in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrNotFound
		}
		staff.ManagerID = in.ManagerID
	}
	if in.Position != nil {
		staff.Position = *in.Position
	}
	if in.Shift != nil {
		staff.Shift = *in.Shift
	}
	if err := uc.repo.Update(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// Logs devuelve los logs realizados por el staff, más recientes primero.
func (uc *StaffUseCase) Logs(id string) ([]dto.InventoryLogResponse, error) {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	logs, err := uc.logRepo.ListByStaff(id)
	if err != nil {
		return nil, err
	}
	return toLogResponses(logs), nil
}

// Products lista los productos del manager del staff. Sin manager asignado
// devuelve lista vacía.
func (uc *StaffUseCase) Products(id string) ([]dto.ProductResponse, error) {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	if staff.ManagerID == nil {
		return []dto.ProductResponse{}, nil
	}
	list, err := uc.productRepo.ListByManager(*staff.ManagerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, report.ToProductResponse(p))
	}
	return items, nil
}

// Delete elimina el staff; sus logs quedan con performed_by en NULL.
func (uc *StaffUseCase) Delete(id string) error {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if staff == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		ManagerID: s.ManagerID,
		Position:  s.Position,
		Shift:     s.Shift,
	}
}
