package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
)

// HandleGetRoot responde el endpoint raíz (público).
func HandleGetRoot(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "OK",
		"message": "BCR API está en ejecución",
	})
}

// HandleNotFound responde 404 con el sobre uniforme para rutas inexistentes.
// Debe registrarse al final, después de todas las rutas.
func HandleNotFound(c *fiber.Ctx) error {
	return domain.NewNotFound(c.Method(), c.OriginalURL())
}
