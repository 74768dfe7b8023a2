package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// isUniqueViolation detecta la violación de un constraint UNIQUE (username,
// email de manager, sku de producto) para que los repos la mapeen al
// sentinela de dominio correspondiente.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// Algunos caminos envuelven el error sin exponer el PgError
	return strings.Contains(err.Error(), pgUniqueViolation)
}
