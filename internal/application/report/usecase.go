package report

import (
	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// ReportUseCase vistas derivadas de solo lectura sobre productos y logs.
// La agregación se expresa como folds explícitos sobre la colección de logs
// confirmados, independiente del motor de consultas.
type ReportUseCase struct {
	logRepo     repository.InventoryLogRepository
	productRepo repository.ProductRepository
	managerRepo repository.ManagerRepository
	staffRepo   repository.StaffRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	logRepo repository.InventoryLogRepository,
	productRepo repository.ProductRepository,
	managerRepo repository.ManagerRepository,
	staffRepo repository.StaffRepository,
) *ReportUseCase {
	return &ReportUseCase{
		logRepo:     logRepo,
		productRepo: productRepo,
		managerRepo: managerRepo,
		staffRepo:   staffRepo,
	}
}

// ManagerReport totales de staff a cargo y productos asignados de un manager.
func (uc *ReportUseCase) ManagerReport(managerID string) (*dto.ManagerReport, error) {
	manager, err := uc.managerRepo.GetByID(managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrNotFound
	}
	totalStaff, err := uc.staffRepo.CountByManager(managerID)
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.productRepo.CountByManager(managerID)
	if err != nil {
		return nil, err
	}
	return &dto.ManagerReport{TotalStaff: totalStaff, TotalProducts: totalProducts}, nil
}

// InventoryReport total de logs, conteo por acción y movimiento por producto.
func (uc *ReportUseCase) InventoryReport() (*dto.InventoryReport, error) {
	logs, err := uc.logRepo.ListAll()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return &dto.InventoryReport{
		TotalLogs:       int64(len(logs)),
		LogsByAction:    FoldLogsByAction(logs),
		ProductMovement: FoldProductMovement(products, logs),
	}, nil
}

// InventoryStatistics totales generales y productos en stock bajo.
func (uc *ReportUseCase) InventoryStatistics() (*dto.InventoryStatistics, error) {
	totalProducts, err := uc.productRepo.CountAll()
	if err != nil {
		return nil, err
	}
	totalLogs, err := uc.logRepo.CountAll()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	low := make([]dto.ProductResponse, 0, len(lowStock))
	for _, p := range lowStock {
		low = append(low, ToProductResponse(p))
	}
	return &dto.InventoryStatistics{
		TotalProducts:    totalProducts,
		TotalLogs:        totalLogs,
		LowStockProducts: low,
	}, nil
}

// FoldLogsByAction cuenta logs por tipo de acción, en orden estable add, remove, adjust.
func FoldLogsByAction(logs []*entity.InventoryLog) []dto.ActionCount {
	counts := map[string]int64{}
	for _, l := range logs {
		counts[l.ActionType]++
	}
	out := make([]dto.ActionCount, 0, 3)
	for _, action := range []string{entity.ActionAdd, entity.ActionRemove, entity.ActionAdjust} {
		out = append(out, dto.ActionCount{ActionType: action, Count: counts[action]})
	}
	return out
}

// FoldProductMovement suma por producto los deltas solicitados de add y remove.
// Se siembra una entrada en cero por cada producto: los productos sin logs
// aparecen con ceros, nunca se omiten. Los adjust no suman en ninguna columna.
func FoldProductMovement(products []*entity.Product, logs []*entity.InventoryLog) []dto.ProductMovement {
	index := make(map[string]int, len(products))
	out := make([]dto.ProductMovement, 0, len(products))
	for i, p := range products {
		index[p.ID] = i
		out = append(out, dto.ProductMovement{ProductID: p.ID, ProductName: p.Name})
	}
	for _, l := range logs {
		i, ok := index[l.ProductID]
		if !ok {
			continue // log de un producto ya eliminado fuera de cascada; no debería ocurrir
		}
		switch l.ActionType {
		case entity.ActionAdd:
			out[i].TotalAdded += l.QuantityChange
		case entity.ActionRemove:
			out[i].TotalRemoved += l.QuantityChange
		}
	}
	return out
}

// ToProductResponse mapea un producto a su DTO con estado de stock derivado.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Quantity:      p.Quantity,
		LowThreshold:  p.LowThreshold,
		HighThreshold: p.HighThreshold,
		Price:         p.Price,
		ManagerID:     p.ManagerID,
		StockStatus:   p.CheckStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
