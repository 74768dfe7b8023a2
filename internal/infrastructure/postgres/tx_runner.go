package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/inventario-core/internal/application/auth"
	"github.com/invorya/inventario-core/internal/application/stock"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner y auth.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para el motor de stock, ejecuta fn con repos
// atados a la tx y hace Commit o Rollback. La actualización de cantidad y el
// append del log viajan juntos o no viajan.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	logRepo := NewInventoryLogRepository(tx)

	if err := fn(productRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistration inicia una transacción para el registro usuario + perfil:
// un fallo al crear el perfil revierte también el usuario (sin huérfanos).
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	managerRepo repository.ManagerRepository,
	staffRepo repository.StaffRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	managerRepo := NewManagerRepository(tx)
	staffRepo := NewStaffRepository(tx)

	if err := fn(userRepo, managerRepo, staffRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
