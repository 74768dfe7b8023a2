package dto

// CreateStaffRequest entrada para crear un perfil de staff suelto
// (normalmente el perfil nace con el registro del usuario).
type CreateStaffRequest struct {
	UserID    string  `json:"user_id" validate:"required,uuid"`
	ManagerID *string `json:"manager_id" validate:"omitempty,uuid"`
	Position  string  `json:"position" validate:"omitempty,max=100"`
	Shift     string  `json:"shift" validate:"omitempty,max=50"`
}

// UpdateStaffRequest entrada para actualizar un perfil de staff.
type UpdateStaffRequest struct {
	ManagerID *string `json:"manager_id" validate:"omitempty,uuid"`
	Position  *string `json:"position" validate:"omitempty,max=100"`
	Shift     *string `json:"shift" validate:"omitempty,max=50"`
}

// StaffResponse salida de un perfil de staff.
type StaffResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	ManagerID *string `json:"manager_id"`
	Position  string  `json:"position"`
	Shift     string  `json:"shift"`
}
