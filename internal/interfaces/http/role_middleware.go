package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
)

// RequireRole devuelve un middleware que autoriza solo los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (lee el rol de c.Locals); el claim del
// token es la única fuente de verdad, no se reconsulta la DB por petición.
//
// Comportamiento:
//   - 401 -> token sin claim de rol (no pasó por AuthMiddleware o token legacy).
//   - 403 -> rol presente pero sin acceso al recurso.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return domain.NewInvalidToken()
		}
		for _, allowed := range roles {
			if strings.EqualFold(role, allowed) {
				return c.Next()
			}
		}
		return domain.NewInsufficientAccess(role)
	}
}
