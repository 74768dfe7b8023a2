package usecase

import (
	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// LogUseCase listados de solo lectura sobre el log de auditoría.
// El log nunca se edita ni se borra desde aquí: es append-only.
type LogUseCase struct {
	repo repository.InventoryLogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.InventoryLogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// List devuelve logs más recientes primero, filtrados por producto o por
// staff si se indica alguno; con ambos vacíos devuelve todos.
func (uc *LogUseCase) List(productID, staffID string) ([]dto.InventoryLogResponse, error) {
	switch {
	case productID != "":
		logs, err := uc.repo.ListByProduct(productID)
		if err != nil {
			return nil, err
		}
		return toLogResponses(logs), nil
	case staffID != "":
		logs, err := uc.repo.ListByStaff(staffID)
		if err != nil {
			return nil, err
		}
		return toLogResponses(logs), nil
	default:
		logs, err := uc.repo.ListAll()
		if err != nil {
			return nil, err
		}
		return toLogResponses(logs), nil
	}
}
