package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-core/internal/application/dto"
	"github.com/invorya/inventario-core/internal/domain/authz"
	"github.com/invorya/inventario-core/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalSuperuser = "superuser"
)

// AuthMiddleware valida el Bearer Token JWT y extrae userID, role y superuser a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, role, superuser, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalSuperuser, superuser)
		return c.Next()
	}
}

// RequireLevel autoriza el acceso con la política de niveles: un solo
// RoleLevel(role) >= required, con superuser pasando siempre.
// Debe usarse DESPUÉS de AuthMiddleware (necesita los locals del token).
func RequireLevel(required authz.Level) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		superuser := GetSuperuser(c)
		if role == "" && !superuser {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		if !authz.Allows(role, superuser, required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "nivel de rol insuficiente"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSuperuser devuelve el flag de superuser del contexto.
func GetSuperuser(c *fiber.Ctx) bool {
	v := c.Locals(LocalSuperuser)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
