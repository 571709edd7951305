package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/user-directory/internal/application/dto"
	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/policy"
)

// HeaderAPIToken header del token opaco de API.
const HeaderAPIToken = "x-api-token"

// LocalRole key en c.Locals para el rol del actor.
const LocalRole = "actor_role"

// RoleResolver resuelve un token presentado al rol de su usuario.
type RoleResolver interface {
	ResolveRole(token string) (string, error)
}

// TokenMiddleware valida el header x-api-token contra el almacenamiento y deja
// el rol del actor en c.Locals. Ausencia de token => 401; token desconocido => 403.
func TokenMiddleware(auth RoleResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderAPIToken)
		role, err := auth.ResolveRole(token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header x-api-token requerido"})
			}
			if errors.Is(err, domain.ErrForbidden) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "x-api-token inválido"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando el token"})
		}
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza el acceso solo a los roles indicados (después de TokenMiddleware).
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := policy.Authorize(GetRole(c), allowed...); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol del usuario no permite esta acción"})
		}
		return c.Next()
	}
}

// GetRole devuelve el rol del actor del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
