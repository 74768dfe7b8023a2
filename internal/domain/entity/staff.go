package entity

// Valores por defecto al crear el perfil de staff durante el registro.
const (
	DefaultStaffPosition = "Staff Member"
	DefaultStaffShift    = "Day"
)

// Staff es el perfil 1:1 de un User con rol "staff".
// ManagerID es opcional: eliminar al manager lo deja en nil.
type Staff struct {
	ID        string
	UserID    string
	ManagerID *string
	Position  string
	Shift     string
}
