package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// UpdateStockUseCase aplica mutaciones de stock (add/remove/adjust) de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y deja exactamente un
// registro en el log de auditoría por llamada exitosa.
type UpdateStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	staffRepo   repository.StaffRepository
}

// NewUpdateStockUseCase construye el caso de uso.
func NewUpdateStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	staffRepo repository.StaffRepository,
) *UpdateStockUseCase {
	return &UpdateStockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		staffRepo:   staffRepo,
	}
}

// UpdateStockInput entrada para una mutación de stock.
// CallerUserID es el usuario autenticado; debe resolver a un perfil de Staff.
type UpdateStockInput struct {
	ProductID    string
	Delta        int64
	Action       string
	Notes        string
	CallerUserID string
}

// UpdateStockResult cantidad posterior y estado derivado.
type UpdateStockResult struct {
	NewQuantity int64
	Status      string
}

// ApplyDelta calcula la nueva cantidad según el tipo de acción.
// add: suma el delta. remove: resta con clamp a cero, nunca negativa.
// adjust: no cambia la cantidad, solo se registra en el log.
func ApplyDelta(quantity, delta int64, action string) int64 {
	switch action {
	case entity.ActionAdd:
		return quantity + delta
	case entity.ActionRemove:
		if delta >= quantity {
			return 0
		}
		return quantity - delta
	default:
		return quantity
	}
}

// UpdateStock valida la entrada, resuelve el performer, bloquea la fila del
// producto y aplica la mutación + el log en una sola transacción.
// El log guarda siempre el delta solicitado, no el efectivo tras el clamp.
func (uc *UpdateStockUseCase) UpdateStock(ctx context.Context, input UpdateStockInput) (*UpdateStockResult, error) {
	if !entity.ValidAction(input.Action) {
		return nil, domain.ErrValidation
	}
	if input.Delta < 0 {
		return nil, domain.ErrValidation
	}

	// El performer debe tener perfil de Staff: managers o admins sin perfil
	// no pueden quedar atribuidos en el log y la operación falla por validación.
	staff, err := uc.staffRepo.GetByUserID(input.CallerUserID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNoStaffProfile
	}

	now := time.Now()
	var result UpdateStockResult

	// Una transacción: bloqueo de fila, update de cantidad y append del log.
	// Si cualquiera falla se revierte todo; sin reintentos automáticos.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		product.Quantity = ApplyDelta(product.Quantity, input.Delta, input.Action)
		if err := productRepo.UpdateQuantity(product.ID, product.Quantity); err != nil {
			return fmt.Errorf("%w: actualizar cantidad: %v", domain.ErrIntegrity, err)
		}

		log := &entity.InventoryLog{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			ActionType:     input.Action,
			QuantityChange: input.Delta,
			PerformedBy:    &staff.ID,
			Notes:          input.Notes,
			Date:           now,
		}
		if err := logRepo.Create(log); err != nil {
			return fmt.Errorf("%w: guardar log: %v", domain.ErrIntegrity, err)
		}

		result = UpdateStockResult{
			NewQuantity: product.Quantity,
			Status:      product.CheckStock(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStock devuelve la cantidad actual y el estado derivado de un producto.
func (uc *UpdateStockUseCase) GetStock(productID string) (*UpdateStockResult, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return &UpdateStockResult{
		NewQuantity: product.Quantity,
		Status:      product.CheckStock(),
	}, nil
}
