package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
	"github.com/haikalarif/BCR-API-chapter08/pkg/logger"
)

// errorEnvelope es el cuerpo uniforme de error: {error: {name, message, details}}.
type errorEnvelope struct {
	Error interface{} `json:"error"`
}

type genericError struct {
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// NewErrorHandler devuelve el traductor central de errores de Fiber:
//   - Errores de dominio -> su status y {error:{name,message,details}}.
//   - Errores propios de Fiber (bind, 405, etc.) -> su código con el mismo sobre.
//   - Cualquier otro error -> 500 con mensaje genérico; la causa real solo se
//     loguea, nunca se devuelve al cliente.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var de *domain.Error
		if errors.As(err, &de) {
			return c.Status(de.Status).JSON(errorEnvelope{Error: de})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(errorEnvelope{Error: genericError{
				Name:    "HttpError",
				Message: fe.Message,
			}})
		}

		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no clasificado")

		return c.Status(fiber.StatusInternalServerError).JSON(errorEnvelope{Error: genericError{
			Name:    "InternalServerError",
			Message: "error interno del servidor",
		}})
	}
}
