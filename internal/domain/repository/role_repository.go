package repository

import "github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"

// RoleRepository define el puerto de lectura para Role (datos de referencia).
type RoleRepository interface {
	GetByID(id int64) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
}
