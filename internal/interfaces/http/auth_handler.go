package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haikalarif/BCR-API-chapter08/internal/application/auth"
	"github.com/haikalarif/BCR-API-chapter08/internal/application/dto"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
)

// AuthHandler maneja login, registro y whoami.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      201   {object}  dto.TokenResponse
// @Failure      401   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /v1/auth/login [post]
//
// Responde 201 en éxito: comportamiento heredado del servicio original,
// preservado deliberadamente.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidation([]domain.FieldError{{Field: "body", Message: "cuerpo inválido"}})
	}
	if err := ValidateStruct(in); err != nil {
		return err
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, image opcional"
// @Success      201   {object}  dto.TokenResponse
// @Failure      422   {object}  map[string]interface{}
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidation([]domain.FieldError{{Field: "body", Message: "cuerpo inválido"}})
	}
	if err := ValidateStruct(in); err != nil {
		return err
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// WhoAmI godoc
// @Summary      Identidad actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /v1/auth/whoami [get]
func (h *AuthHandler) WhoAmI(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return domain.NewInvalidToken()
	}
	out, err := h.uc.WhoAmI(userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
