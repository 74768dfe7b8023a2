package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación de InventoryLogRepository sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el log es append-only.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

const logColumns = `id, product_id, action_type, quantity_change, performed_by, notes, date`

// Create persiste un registro del log de auditoría.
func (r *InventoryLogRepo) Create(log *entity.InventoryLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_logs (` + logColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ProductID, log.ActionType, log.QuantityChange,
		log.PerformedBy, log.Notes, log.Date,
	)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// ListByProduct logs de un producto, más recientes primero.
func (r *InventoryLogRepo) ListByProduct(productID string) ([]*entity.InventoryLog, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs WHERE product_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list logs by product: %w", err)
	}
	defer rows.Close()
	return scanLogRows(rows)
}

// ListByStaff logs realizados por un staff, más recientes primero.
func (r *InventoryLogRepo) ListByStaff(staffID string) ([]*entity.InventoryLog, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs WHERE performed_by = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, staffID)
	if err != nil {
		return nil, fmt.Errorf("list logs by staff: %w", err)
	}
	defer rows.Close()
	return scanLogRows(rows)
}

// ListAll todos los logs, más recientes primero (para reportes).
func (r *InventoryLogRepo) ListAll() ([]*entity.InventoryLog, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all logs: %w", err)
	}
	defer rows.Close()
	return scanLogRows(rows)
}

func scanLogRows(rows pgx.Rows) ([]*entity.InventoryLog, error) {
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.ActionType, &l.QuantityChange,
			&l.PerformedBy, &l.Notes, &l.Date); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CountAll cuenta todos los logs.
func (r *InventoryLogRepo) CountAll() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM inventory_logs`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inventory logs: %w", err)
	}
	return n, nil
}
