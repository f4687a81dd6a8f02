package entity

import "time"

// User representa un usuario del sistema (tiene exactamente un Role).
type User struct {
	ID           int64
	Name         string
	Email        string // siempre almacenado en minúsculas
	Image        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       int64
	Role         *Role // se carga con JOIN en las búsquedas de auth
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
