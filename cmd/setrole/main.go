package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invorya/inventario-core/internal/application/usecase"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/infrastructure/postgres"
	"github.com/invorya/inventario-core/pkg/config"
)

// Herramienta administrativa: cambia el rol de un usuario por username.
// Uso: setrole <username> <admin|manager|staff>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: setrole <username> <admin|manager|staff>")
		os.Exit(2)
	}
	username, role := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
	user, err := uc.SetRoleByUsername(username, role)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		// Un usuario inexistente se reporta, no es un fallo del comando.
		fmt.Printf("usuario %q no encontrado\n", username)
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(os.Stderr, "rol inválido %q: debe ser admin, manager o staff\n", role)
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, "cambiar rol:", err)
		os.Exit(1)
	default:
		fmt.Printf("rol de %q actualizado a %q\n", user.Username, user.Role)
	}
}
