package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Roles son datos de referencia sembrados por migración; solo lectura.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de lectura para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// GetByID obtiene un rol por ID. Devuelve nil sin error si no existe.
func (r *RoleRepo) GetByID(id int64) (*entity.Role, error) {
	return r.scanOne(r.pool.QueryRow(context.Background(),
		`SELECT id, name FROM roles WHERE id = $1`, id), "get role by id")
}

// GetByName obtiene un rol por nombre.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.scanOne(r.pool.QueryRow(context.Background(),
		`SELECT id, name FROM roles WHERE name = $1`, name), "get role by name")
}

func (r *RoleRepo) scanOne(row pgx.Row, op string) (*entity.Role, error) {
	var role entity.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &role, nil
}
