package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/haikalarif/BCR-API-chapter08/internal/application/auth"
	"github.com/haikalarif/BCR-API-chapter08/internal/application/dto"
	"github.com/haikalarif/BCR-API-chapter08/internal/application/usecase"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
	apphttp "github.com/haikalarif/BCR-API-chapter08/internal/interfaces/http"
	"github.com/haikalarif/BCR-API-chapter08/pkg/jwt"
	"github.com/haikalarif/BCR-API-chapter08/pkg/logger"
	"github.com/haikalarif/BCR-API-chapter08/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeRoleRepo struct {
	roles []*entity.Role
}

func (r *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

type fakeCarRepo struct {
	nextID int64
	cars   map[int64]*entity.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{nextID: 1, cars: map[int64]*entity.Car{}}
}

func (r *fakeCarRepo) Create(car *entity.Car) error {
	car.ID = r.nextID
	r.nextID++
	cp := *car
	r.cars[car.ID] = &cp
	return nil
}

func (r *fakeCarRepo) GetByID(id int64) (*entity.Car, error) {
	c, ok := r.cars[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCarRepo) List(limit, offset int) ([]*entity.Car, error) {
	var list []*entity.Car
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.cars[id]; ok {
			cp := *c
			list = append(list, &cp)
		}
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeCarRepo) Count() (int, error) { return len(r.cars), nil }

func (r *fakeCarRepo) Update(car *entity.Car) error {
	cp := *car
	r.cars[car.ID] = &cp
	return nil
}

func (r *fakeCarRepo) Delete(id int64) error {
	delete(r.cars, id)
	return nil
}

type fakeReport struct{}

func (fakeReport) Generate(cars []*entity.Car) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app de test (misma forma que cmd/api)
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "bcr-api-test"
)

type testEnv struct {
	app    *fiber.App
	signer *jwt.Signer
	users  *fakeUserRepo
	cars   *fakeCarRepo
	uc     *auth.AuthUseCase
}

// buildTestEnv construye una app Fiber completa con el traductor central de
// errores, las rutas reales y fakes en memoria como storage.
func buildTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	signer := jwt.NewSigner(testJWTSecret, testIssuer, 60)
	hasher := password.NewHasher(bcrypt.MinCost)

	users := newFakeUserRepo()
	roles := &fakeRoleRepo{roles: []*entity.Role{
		{ID: 1, Name: entity.RoleCustomer},
		{ID: 2, Name: entity.RoleAdmin},
	}}
	cars := newFakeCarRepo()

	authUC := auth.NewAuthUseCase(users, roles, hasher, signer)
	carUC := usecase.NewCarUseCase(cars, fakeReport{})

	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.NewErrorHandler(log),
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:   authUC,
		CarUC:    carUC,
		Verifier: signer,
	})

	return &testEnv{app: app, signer: signer, users: users, cars: cars, uc: authUC}
}

// registerUser registra un usuario vía el use case y devuelve sus claims.
func (e *testEnv) registerUser(t *testing.T, name, email, pass string) *jwt.Claims {
	t.Helper()
	out, err := e.uc.Register(dto.RegisterRequest{Name: name, Email: email, Password: pass})
	require.NoError(t, err)
	claims, err := e.signer.Verify(out.AccessToken)
	require.NoError(t, err)
	return claims
}

// tokenFor emite un token Bearer para el usuario y rol indicados.
func (e *testEnv) tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, err := e.signer.Issue(userID, role)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func (e *testEnv) doJSON(t *testing.T, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// errorField devuelve el objeto error del sobre {error:{...}}.
func errorField(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	e, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "la respuesta debe tener el sobre {error:{...}}, fue: %v", body)
	return e
}
