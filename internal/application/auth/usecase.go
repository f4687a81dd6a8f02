package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/haikalarif/BCR-API-chapter08/internal/application/dto"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/repository"
	"github.com/haikalarif/BCR-API-chapter08/pkg/password"
)

// TokenIssuer es el contrato mínimo que el use case necesita para emitir tokens.
// Lo implementa *jwt.Signer; la interfaz permite sustituirlo en tests.
type TokenIssuer interface {
	Issue(userID int64, role string) (string, error)
}

// AuthUseCase casos de uso de autenticación: login, registro y whoami.
// Colaboradores inyectados; cada llamada es stateless dado el contenido del storage.
type AuthUseCase struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	hasher *password.Hasher
	issuer TokenIssuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, roles repository.RoleRepository, hasher *password.Hasher, issuer TokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, roles: roles, hasher: hasher, issuer: issuer}
}

// Login verifica email/password y emite un token con {subject, role}.
// Email inexistente -> RecordNotFoundError; hash que no coincide -> WrongPasswordError.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	email := NormalizeEmail(in.Email)
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewRecordNotFound("email", email)
	}
	if !uc.hasher.Compare(in.Password, user.PasswordHash) {
		return nil, domain.NewWrongPassword()
	}
	token, err := uc.issuer.Issue(user.ID, user.Role.Name)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token}, nil
}

// Register crea un usuario con rol CUSTOMER: hashea el password y emite token
// igual que Login. Email ya registrado -> DuplicateEmailError. La ausencia del
// rol CUSTOMER es un error fatal de configuración, no un error de usuario.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := NormalizeEmail(in.Email)
	existing, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicateEmail(email)
	}
	role, err := uc.roles.GetByName(entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("rol por defecto %q no existe en la base de datos", entity.RoleCustomer)
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        email,
		Image:        in.Image,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	token, err := uc.issuer.Issue(user.ID, role.Name)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token}, nil
}

// WhoAmI resuelve la identidad actual a partir del subject ya verificado por
// el middleware. Usuario inexistente -> RecordNotFoundError (404).
func (uc *AuthUseCase) WhoAmI(userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewRecordNotFound("id", userID)
	}
	role := user.Role
	if role == nil {
		role, err = uc.roles.GetByID(user.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.NewRecordNotFound("roleId", user.RoleID)
		}
	}
	return toUserResponse(user, role), nil
}

// NormalizeEmail lleva el email a minúsculas; escrituras y búsquedas usan
// siempre la forma normalizada para que la unicidad sea insensible a mayúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User, r *entity.Role) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      dto.RoleResponse{ID: r.ID, Name: r.Name},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
