package usecase

import (
	"time"

	"github.com/invorya/inventario-core/internal/application/auth"
	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// UserUseCase casos de uso administrativos sobre usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Update actualiza email y departamento. El rol nunca cambia por aquí.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ToggleActivation invierte is_active y devuelve el nuevo estado.
func (uc *UserUseCase) ToggleActivation(id string) (*dto.ToggleActivationResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return &dto.ToggleActivationResponse{
		Status:   "User activation toggled",
		IsActive: user.IsActive,
	}, nil
}

// SetRoleByUsername cambio administrativo de rol. Un usuario inexistente se
// reporta como ErrUserNotFound, nunca se trata como éxito.
func (uc *UserUseCase) SetRoleByUsername(username, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrValidation
	}
	user, err := uc.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.UpdateRole(user.ID, role); err != nil {
		return nil, err
	}
	user.Role = role
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario; su perfil cae en la misma transacción.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}
