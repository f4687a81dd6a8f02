package dto

import "time"

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Image    string `json:"image" validate:"omitempty,max=500"`
}

// TokenResponse salida de login y registro.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserResponse salida de un usuario. El hash de la contraseña nunca se serializa.
type UserResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Image     string       `json:"image"`
	Role      RoleResponse `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
