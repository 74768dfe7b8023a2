package auth

import (
	"context"

	"github.com/invorya/inventario-core/internal/domain/repository"
)

// TxRunner ejecuta el registro de usuario + perfil dentro de una transacción:
// si falla la creación del perfil no puede quedar un usuario huérfano.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		managerRepo repository.ManagerRepository,
		staffRepo repository.StaffRepository,
	) error) error
}
