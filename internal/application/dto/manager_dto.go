package dto

// UpdateManagerRequest entrada para actualizar un perfil de manager.
type UpdateManagerRequest struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// ManagerResponse salida de un perfil de manager.
type ManagerResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
