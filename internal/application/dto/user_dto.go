package dto

import "time"

// RegisterRequest entrada para registro (abierto, sin autenticación).
// Si el rol es manager o staff se crea el perfil en la misma transacción.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=1,max=150"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"omitempty,oneof=admin manager staff"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department,omitempty"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest entrada para el update genérico (nunca toca el rol).
type UpdateUserRequest struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// UpdateRoleRequest entrada para el cambio administrativo de rol.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager staff"`
}

// ToggleActivationResponse salida del toggle de activación.
type ToggleActivationResponse struct {
	Status   string `json:"status"`
	IsActive bool   `json:"is_active"`
}
