package repository

import "github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"

// CarRepository define el puerto de persistencia para Car.
type CarRepository interface {
	Create(car *entity.Car) error // rellena car.ID
	GetByID(id int64) (*entity.Car, error)
	List(limit, offset int) ([]*entity.Car, error)
	Count() (int, error)
	Update(car *entity.Car) error
	Delete(id int64) error
}
