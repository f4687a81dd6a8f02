package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
	"github.com/haikalarif/BCR-API-chapter08/pkg/jwt"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// TokenVerifier es el contrato mínimo que necesita el middleware para validar
// tokens. Lo implementa *jwt.Signer; la interfaz permite fakes en tests.
type TokenVerifier interface {
	Verify(tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware valida el Bearer Token y deja {subject, role} en c.Locals.
// Header ausente, formato incorrecto o firma inválida responden 401 con
// InvalidTokenError vía el traductor central de errores.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.NewInvalidToken()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.NewInvalidToken()
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return domain.NewInvalidToken()
		}
		claims, err := verifier.Verify(tokenString)
		if err != nil {
			return domain.NewInvalidToken()
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// GetUserID devuelve el ID de usuario del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
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
