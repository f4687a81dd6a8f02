package repository

import "github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven el usuario con su Role cargado; nil sin error si no existe.
type UserRepository interface {
	Create(user *entity.User) error // rellena user.ID
	FindByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error) // email ya normalizado a minúsculas
}
