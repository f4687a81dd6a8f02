package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/haikalarif/BCR-API-chapter08/internal/application/dto"
	"github.com/haikalarif/BCR-API-chapter08/internal/application/usecase"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
)

// CarHandler maneja las peticiones HTTP del catálogo de carros.
// Lectura pública; mutaciones restringidas a ADMIN vía RequireRole.
type CarHandler struct {
	uc *usecase.CarUseCase
}

// NewCarHandler construye el handler.
func NewCarHandler(uc *usecase.CarUseCase) *CarHandler {
	return &CarHandler{uc: uc}
}

// List godoc
// @Summary      Listar carros
// @Tags         cars
// @Produce      json
// @Param        page      query  int  false  "página (desde 1)"
// @Param        pageSize  query  int  false  "tamaño de página"
// @Success      200  {object}  dto.CarListResponse
// @Router       /v1/cars [get]
func (h *CarHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return domain.NewValidation([]domain.FieldError{{Field: "query", Message: "parámetros de paginación inválidos"}})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetByID godoc
// @Summary      Obtener carro por ID
// @Tags         cars
// @Produce      json
// @Param        id   path  int  true  "ID del carro"
// @Success      200  {object}  dto.CarResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /v1/cars/{id} [get]
func (h *CarHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return err
	}
	if out == nil {
		return domain.NewRecordNotFound("id", id)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Create godoc
// @Summary      Crear carro
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarRequest  true  "datos del carro"
// @Success      201   {object}  dto.CarResponse
// @Failure      422   {object}  map[string]interface{}
// @Router       /v1/cars [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidation([]domain.FieldError{{Field: "body", Message: "cuerpo inválido"}})
	}
	if err := ValidateStruct(in); err != nil {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar carro
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del carro"
// @Param        body  body  dto.UpdateCarRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.CarResponse
// @Failure      422   {object}  map[string]interface{}
// @Router       /v1/cars/{id} [put]
//
// Un ID inexistente responde 422, no 404: comportamiento heredado del
// servicio original, preservado deliberadamente.
func (h *CarHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidation([]domain.FieldError{{Field: "body", Message: "cuerpo inválido"}})
	}
	if err := ValidateStruct(in); err != nil {
		return err
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return err
	}
	if out == nil {
		return domain.NewValidation([]domain.FieldError{{Field: "id", Message: "el carro indicado no existe"}})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Delete godoc
// @Summary      Eliminar carro
// @Tags         cars
// @Security     Bearer
// @Param        id  path  int  true  "ID del carro"
// @Success      204
// @Router       /v1/cars/{id} [delete]
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF de la flota
// @Tags         cars
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /v1/cars/report [get]
func (h *CarHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.uc.FleetReport()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="flota.pdf"`)
	return c.Status(fiber.StatusOK).Send(pdf)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidation([]domain.FieldError{{Field: "id", Message: "id debe ser un entero positivo"}})
	}
	return id, nil
}
