package http_test

import (
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haikalarif/BCR-API-chapter08/internal/application/dto"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// POST /v1/auth/register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_UsuarioNuevo_Retorna201ConToken(t *testing.T) {
	env := buildTestEnv(t)

	resp := env.doJSON(t, fiber.MethodPost, "/v1/auth/register", "", dto.RegisterRequest{
		Name:     "Khairil",
		Email:    "khairil@gmail.com",
		Password: "1234567890",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["accessToken"].(string)
	require.True(t, ok, "la respuesta debe traer accessToken")

	claims, err := env.signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, claims.Role)

	// el subject del token es el ID del usuario recién creado
	created, err := env.users.FindByEmail("khairil@gmail.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, strconv.FormatInt(created.ID, 10), claims.Subject)
}

func TestRegister_EmailDuplicado_Retorna422(t *testing.T) {
	env := buildTestEnv(t)
	env.registerUser(t, "Khairil", "khairil@gmail.com", "1234567890")

	resp := env.doJSON(t, fiber.MethodPost, "/v1/auth/register", "", dto.RegisterRequest{
		Name:     "Otro",
		Email:    "KHAIRIL@gmail.com",
		Password: "otropassword",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	e := errorField(t, decodeBody(t, resp))
	assert.Equal(t, "DuplicateEmailError", e["name"])
}

func TestRegister_CuerpoInvalido_Retorna422ConDetalles(t *testing.T) {
	env := buildTestEnv(t)

	// password bajo el mínimo y email mal formado
	resp := env.doJSON(t, fiber.MethodPost, "/v1/auth/register", "", dto.RegisterRequest{
		Name:     "X",
		Email:    "no-es-un-email",
		Password: "corto",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	e := errorField(t, decodeBody(t, resp))
	assert.Equal(t, "ValidationError", e["name"])
	details, ok := e["details"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, details)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /v1/auth/login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_Retorna201ConToken(t *testing.T) {
	env := buildTestEnv(t)
	env.registerUser(t, "Haikal", "haikalarif@gmail.com", "12345678")

	resp := env.doJSON(t, fiber.MethodPost, "/v1/auth/login", "", dto.LoginRequest{
		Email:    "haikalarif@gmail.com",
		Password: "12345678",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["accessToken"].(string)
	require.True(t, ok)

	claims, err := env.signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	env := buildTestEnv(t)
	env.registerUser(t, "Haikal", "haikalarif@gmail.com", "12345678")

	resp := env.doJSON(t, fiber.MethodPost, "/v1/auth/login", "", dto.LoginRequest{
		Email:    "haikalarif@gmail.com",
		Password: "1234567",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	e := errorField(t, decodeBody(t, resp))
	assert.Equal(t, "WrongPasswordError", e["name"])
	assert.NotEmpty(t, e["message"])
}

func TestLogin_EmailInexistente_Retorna404(t *testing.T) {
	env := buildTestEnv(t)

	resp := env.doJSON(t, fiber.MethodPost, "/v1/auth/login", "", dto.LoginRequest{
		Email:    "nadie@gmail.com",
		Password: "12345678",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	e := errorField(t, decodeBody(t, resp))
	assert.Equal(t, "RecordNotFoundError", e["name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /v1/auth/whoami
// ──────────────────────────────────────────────────────────────────────────────

func TestWhoAmI_TokenValido_RetornaUsuarioSinHash(t *testing.T) {
	env := buildTestEnv(t)
	claims := env.registerUser(t, "Khairil", "khairil@gmail.com", "1234567890")
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	require.NoError(t, err)

	resp := env.doJSON(t, fiber.MethodGet, "/v1/auth/whoami", env.tokenFor(t, id, claims.Role), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "khairil@gmail.com", body["email"])
	assert.Equal(t, "Khairil", body["name"])
	role, ok := body["role"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, entity.RoleCustomer, role["name"])

	// el hash de la credencial nunca sale por la API
	_, tieneHash := body["passwordHash"]
	assert.False(t, tieneHash)
	_, tienePassword := body["password"]
	assert.False(t, tienePassword)
}

func TestWhoAmI_SubjectInexistente_Retorna404(t *testing.T) {
	env := buildTestEnv(t)

	// token válido cuyo subject no corresponde a ningún usuario
	resp := env.doJSON(t, fiber.MethodGet, "/v1/auth/whoami", env.tokenFor(t, 100, entity.RoleCustomer), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	e := errorField(t, decodeBody(t, resp))
	assert.Equal(t, "RecordNotFoundError", e["name"])
}

func TestWhoAmI_SinToken_Retorna401(t *testing.T) {
	env := buildTestEnv(t)

	resp := env.doJSON(t, fiber.MethodGet, "/v1/auth/whoami", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	e := errorField(t, decodeBody(t, resp))
	assert.Equal(t, "InvalidTokenError", e["name"])
}
