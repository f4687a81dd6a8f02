package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/haikalarif/BCR-API-chapter08/pkg/logger"
)

// LocalRequestID key del identificador de petición en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger registra cada petición con un request id propio (UUID),
// método, ruta, status y latencia. Nunca registra cuerpos ni credenciales.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-Id", requestID)

		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")

		return err
	}
}
