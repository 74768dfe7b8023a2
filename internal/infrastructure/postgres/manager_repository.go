package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

// ManagerRepo implementación de ManagerRepository sobre PostgreSQL (usable con pool o tx).
type ManagerRepo struct {
	q Querier
}

// NewManagerRepository construye el adaptador de persistencia para managers.
func NewManagerRepository(q Querier) *ManagerRepo {
	return &ManagerRepo{q: q}
}

// Create persiste un nuevo perfil de manager.
func (r *ManagerRepo) Create(manager *entity.Manager) error {
	query := `
		INSERT INTO managers (id, user_id, email, department)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		manager.ID, manager.UserID, manager.Email, manager.Department,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert manager: %w", err)
	}
	return nil
}

// GetByID obtiene un manager por ID.
func (r *ManagerRepo) GetByID(id string) (*entity.Manager, error) {
	return r.scanOne(`SELECT id, user_id, email, department FROM managers WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil de manager de un usuario.
func (r *ManagerRepo) GetByUserID(userID string) (*entity.Manager, error) {
	return r.scanOne(`SELECT id, user_id, email, department FROM managers WHERE user_id = $1`, userID)
}

func (r *ManagerRepo) scanOne(query string, arg any) (*entity.Manager, error) {
	var m entity.Manager
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.UserID, &m.Email, &m.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return &m, nil
}

// List lista managers con paginación.
func (r *ManagerRepo) List(limit, offset int) ([]*entity.Manager, error) {
	query := `SELECT id, user_id, email, department FROM managers ORDER BY email LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Manager
	for rows.Next() {
		var m entity.Manager
		if err := rows.Scan(&m.ID, &m.UserID, &m.Email, &m.Department); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un manager.
func (r *ManagerRepo) Update(manager *entity.Manager) error {
	query := `UPDATE managers SET email = $2, department = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, manager.ID, manager.Email, manager.Department)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update manager: %w", err)
	}
	return nil
}

// Delete elimina el manager con detach: productos y staff dependientes quedan
// con manager_id en NULL, nunca se eliminan. Todo en una transacción.
func (r *ManagerRepo) Delete(id string) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete manager: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `UPDATE products SET manager_id = NULL WHERE manager_id = $1`, id); err != nil {
		return fmt.Errorf("detach products: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE staff SET manager_id = NULL WHERE manager_id = $1`, id); err != nil {
		return fmt.Errorf("detach staff: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM managers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	return tx.Commit(ctx)
}
