package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrValidation     = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrUsernameTaken  = errors.New("el username ya está registrado")
	ErrEmailTaken     = errors.New("el email ya está registrado")
	ErrSKUTaken       = errors.New("el sku ya está registrado")
	ErrNoStaffProfile = errors.New("el usuario no tiene perfil de staff")
	ErrIntegrity      = errors.New("fallo de integridad al persistir producto y log")
)
