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

var _ repository.CarRepository = (*CarRepo)(nil)

// CarRepo implementación del puerto CarRepository sobre PostgreSQL.
type CarRepo struct {
	pool *pgxpool.Pool
}

// NewCarRepository construye el adaptador de persistencia para carros.
func NewCarRepository(pool *pgxpool.Pool) *CarRepo {
	return &CarRepo{pool: pool}
}

// Create persiste un carro nuevo y rellena su ID.
func (r *CarRepo) Create(car *entity.Car) error {
	query := `
		INSERT INTO cars (name, price, size, image, is_currently_rented, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		car.Name, car.Price, car.Size, car.Image, car.IsCurrentlyRented,
		car.CreatedAt, car.UpdatedAt,
	).Scan(&car.ID)
	if err != nil {
		return fmt.Errorf("insert car: %w", err)
	}
	return nil
}

// GetByID obtiene un carro por ID. Devuelve nil sin error si no existe.
func (r *CarRepo) GetByID(id int64) (*entity.Car, error) {
	query := `
		SELECT id, name, price, size, image, is_currently_rented, created_at, updated_at
		FROM cars WHERE id = $1`
	var c entity.Car
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Price, &c.Size, &c.Image, &c.IsCurrentlyRented,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car by id: %w", err)
	}
	return &c, nil
}

// List lista carros con paginación, ordenados por ID.
func (r *CarRepo) List(limit, offset int) ([]*entity.Car, error) {
	query := `
		SELECT id, name, price, size, image, is_currently_rented, created_at, updated_at
		FROM cars ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()
	var list []*entity.Car
	for rows.Next() {
		var c entity.Car
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Size, &c.Image, &c.IsCurrentlyRented, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total de carros del catálogo.
func (r *CarRepo) Count() (int, error) {
	var count int
	err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM cars`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return count, nil
}

// Update actualiza un carro.
func (r *CarRepo) Update(car *entity.Car) error {
	query := `
		UPDATE cars SET name = $2, price = $3, size = $4, image = $5,
		       is_currently_rented = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		car.ID, car.Name, car.Price, car.Size, car.Image, car.IsCurrentlyRented, car.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}
	return nil
}

// Delete elimina un carro por ID.
func (r *CarRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}
