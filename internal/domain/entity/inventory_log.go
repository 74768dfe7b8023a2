package entity

import "time"

// Tipos de acción registrables en el log de inventario.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionAdjust = "adjust"
)

// ValidAction indica si el tipo de acción es uno de los tres conocidos.
func ValidAction(action string) bool {
	return action == ActionAdd || action == ActionRemove || action == ActionAdjust
}

// InventoryLog es un registro de auditoría append-only de una mutación de stock.
// QuantityChange guarda siempre el delta solicitado, no el efectivo tras el
// clamp a cero. Nunca se edita ni se borra por operación normal; eliminar el
// Product elimina sus logs, eliminar el Staff deja PerformedBy en nil.
type InventoryLog struct {
	ID             string
	ProductID      string
	ActionType     string // add, remove, adjust
	QuantityChange int64
	PerformedBy    *string // Staff.ID; nil si el staff fue eliminado
	Notes          string
	Date           time.Time
}
