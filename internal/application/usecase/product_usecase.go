package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/application/report"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// La cantidad no se edita aquí: solo muta vía el motor de stock.
type ProductUseCase struct {
	repo        repository.ProductRepository
	managerRepo repository.ManagerRepository
	logRepo     repository.InventoryLogRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	managerRepo repository.ManagerRepository,
	logRepo repository.InventoryLogRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, managerRepo: managerRepo, logRepo: logRepo}
}

// Create crea un nuevo producto. SKU único; precio no negativo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrValidation
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	if in.Quantity < 0 {
		return nil, domain.ErrValidation
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
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Quantity:      in.Quantity,
		LowThreshold:  in.LowThreshold,
		HighThreshold: in.HighThreshold,
		Price:         in.Price,
		ManagerID:     in.ManagerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := report.ToProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := report.ToProductResponse(product)
	return &resp, nil
}

// Update actualiza un producto. No permite modificar la cantidad.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.LowThreshold != nil {
		product.LowThreshold = *in.LowThreshold
	}
	if in.HighThreshold != nil {
		product.HighThreshold = *in.HighThreshold
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrValidation
		}
		product.Price = *in.Price
	}
	if in.ManagerID != nil {
		manager, err := uc.managerRepo.GetByID(*in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrNotFound
		}
		product.ManagerID = in.ManagerID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	resp := report.ToProductResponse(product)
	return &resp, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, report.ToProductResponse(p))
	}
	return items, nil
}

// Logs devuelve los logs del producto, más recientes primero.
func (uc *ProductUseCase) Logs(id string) ([]dto.InventoryLogResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	logs, err := uc.logRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return toLogResponses(logs), nil
}

// Barcode devuelve el código de barras derivado del SKU.
func (uc *ProductUseCase) Barcode(id string) (*dto.BarcodeResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BarcodeResponse{Barcode: fmt.Sprintf("BARCODE-%s", product.SKU)}, nil
}

// Delete elimina un producto; sus logs caen en cascada en la misma transacción.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toLogResponses(logs []*entity.InventoryLog) []dto.InventoryLogResponse {
	out := make([]dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.InventoryLogResponse{
			ID:             l.ID,
			ProductID:      l.ProductID,
			ActionType:     l.ActionType,
			QuantityChange: l.QuantityChange,
			PerformedBy:    l.PerformedBy,
			Notes:          l.Notes,
			Date:           l.Date,
		})
	}
	return out
}
