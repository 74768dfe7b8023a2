// Package authz implementa la política de autorización por niveles de rol.
// Un solo orden total reemplaza los tres chequeos booleanos solapados:
// staff < manager < admin, y superuser pasa cualquier nivel.
package authz

import "github.com/invorya/inventario-core/internal/domain/entity"

// Level es el rango ordinal de un rol para comparaciones de autorización.
type Level int

const (
	LevelNone    Level = 0 // no autenticado o rol desconocido
	LevelStaff   Level = 1
	LevelManager Level = 2
	LevelAdmin   Level = 3
)

// RoleLevel mapea un rol a su nivel. Roles desconocidos valen LevelNone.
func RoleLevel(role string) Level {
	switch role {
	case entity.RoleAdmin:
		return LevelAdmin
	case entity.RoleManager:
		return LevelManager
	case entity.RoleStaff:
		return LevelStaff
	default:
		return LevelNone
	}
}

// Allows decide si un caller con (role, superuser) satisface el nivel requerido.
// Función pura y total: sin efectos, determinista sobre cualquier entrada.
func Allows(role string, superuser bool, required Level) bool {
	if superuser {
		return true
	}
	lvl := RoleLevel(role)
	if lvl == LevelNone {
		return false
	}
	return lvl >= required
}
