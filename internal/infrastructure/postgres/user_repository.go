package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario y rellena su ID. El email ya llega en
// minúsculas; la violación del índice único se traduce a DuplicateEmailError.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (name, email, image, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		user.Name, user.Email, user.Image, user.PasswordHash, user.RoleID,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateEmail(user.Email)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID con su rol (JOIN roles).
func (r *UserRepo) FindByID(id int64) (*entity.User, error) {
	query := userWithRoleQuery + ` WHERE u.id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get user by id")
}

// FindByEmail obtiene un usuario por email (ya normalizado) con su rol.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := userWithRoleQuery + ` WHERE lower(u.email) = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, email), "get user by email")
}

const userWithRoleQuery = `
	SELECT u.id, u.name, u.email, u.image, u.password_hash, u.role_id,
	       r.id, r.name,
	       u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id`

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var role entity.Role
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Image, &u.PasswordHash, &u.RoleID,
		&role.ID, &role.Name,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Role = &role
	return &u, nil
}

// isUniqueViolation detecta el código 23505 (unique_violation) de PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
