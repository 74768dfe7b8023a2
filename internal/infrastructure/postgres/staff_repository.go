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

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository sobre PostgreSQL (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de persistencia para staff.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persiste un nuevo perfil de staff.
func (r *StaffRepo) Create(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (id, user_id, manager_id, position, shift)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.UserID, staff.ManagerID, staff.Position, staff.Shift,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un staff por ID.
func (r *StaffRepo) GetByID(id string) (*entity.Staff, error) {
	return r.scanOne(`SELECT id, user_id, manager_id, position, shift FROM staff WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil de staff de un usuario.
func (r *StaffRepo) GetByUserID(userID string) (*entity.Staff, error) {
	return r.scanOne(`SELECT id, user_id, manager_id, position, shift FROM staff WHERE user_id = $1`, userID)
}

func (r *StaffRepo) scanOne(query string, arg any) (*entity.Staff, error) {
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.UserID, &s.ManagerID, &s.Position, &s.Shift,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// List lista perfiles de staff con paginación.
func (r *StaffRepo) List(limit, offset int) ([]*entity.Staff, error) {
	query := `SELECT id, user_id, manager_id, position, shift FROM staff ORDER BY position LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	return scanStaffRows(rows)
}

// ListByManager lista el staff a cargo de un manager.
func (r *StaffRepo) ListByManager(managerID string) ([]*entity.Staff, error) {
	query := `SELECT id, user_id, manager_id, position, shift FROM staff WHERE manager_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, managerID)
	if err != nil {
		return nil, fmt.Errorf("list staff by manager: %w", err)
	}
	defer rows.Close()
	return scanStaffRows(rows)
}

func scanStaffRows(rows pgx.Rows) ([]*entity.Staff, error) {
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.UserID, &s.ManagerID, &s.Position, &s.Shift); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountByManager cuenta el staff a cargo de un manager.
func (r *StaffRepo) CountByManager(managerID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM staff WHERE manager_id = $1`, managerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count staff by manager: %w", err)
	}
	return n, nil
}

// Update actualiza un staff.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	query := `UPDATE staff SET manager_id = $2, position = $3, shift = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, staff.ID, staff.ManagerID, staff.Position, staff.Shift)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete elimina el staff dejando sus logs con performed_by en NULL.
// El log es append-only: las filas nunca se borran con el staff.
func (r *StaffRepo) Delete(id string) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete staff: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `UPDATE inventory_logs SET performed_by = NULL WHERE performed_by = $1`, id); err != nil {
		return fmt.Errorf("detach logs: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return tx.Commit(ctx)
}
