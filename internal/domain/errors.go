package domain

import (
	"fmt"
	"net/http"
)

// Error es un error de dominio con nombre estable, mensaje y detalles opcionales.
// Status indica el código HTTP con el que se traduce en el borde; no se serializa.
type Error struct {
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
	Status  int         `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// FieldError detalle de validación a nivel de campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewRecordNotFound indica que una búsqueda por clave no encontró nada.
// Los detalles identifican el campo y valor consultados; nunca contraseñas.
func NewRecordNotFound(field string, value interface{}) *Error {
	return &Error{
		Name:    "RecordNotFoundError",
		Message: "no se encontró ningún registro con el criterio indicado",
		Details: map[string]interface{}{"field": field, "value": value},
		Status:  http.StatusNotFound,
	}
}

// NewWrongPassword indica que la contraseña no coincide con el hash almacenado.
func NewWrongPassword() *Error {
	return &Error{
		Name:    "WrongPasswordError",
		Message: "la contraseña es incorrecta",
		Status:  http.StatusUnauthorized,
	}
}

// NewInvalidToken indica token de acceso ausente, malformado o con firma inválida.
func NewInvalidToken() *Error {
	return &Error{
		Name:    "InvalidTokenError",
		Message: "token de acceso inválido o ausente",
		Status:  http.StatusUnauthorized,
	}
}

// NewInsufficientAccess indica que el rol del token no alcanza para el recurso.
func NewInsufficientAccess(role string) *Error {
	return &Error{
		Name:    "InsufficientAccessError",
		Message: "el rol actual no tiene acceso a este recurso",
		Details: map[string]interface{}{"role": role},
		Status:  http.StatusForbidden,
	}
}

// NewDuplicateEmail indica que el email ya está registrado (insensible a mayúsculas).
func NewDuplicateEmail(email string) *Error {
	return &Error{
		Name:    "DuplicateEmailError",
		Message: "el email ya está registrado",
		Details: map[string]interface{}{"field": "email", "value": email},
		Status:  http.StatusUnprocessableEntity,
	}
}

// NewValidation indica entrada malformada, con detalles por campo.
func NewValidation(fields []FieldError) *Error {
	return &Error{
		Name:    "ValidationError",
		Message: "la petición contiene campos inválidos",
		Details: fields,
		Status:  http.StatusUnprocessableEntity,
	}
}

// NewNotFound indica una ruta inexistente.
func NewNotFound(method, url string) *Error {
	return &Error{
		Name:    "NotFoundError",
		Message: fmt.Sprintf("no existe %s %s", method, url),
		Details: map[string]interface{}{"method": method, "url": url},
		Status:  http.StatusNotFound,
	}
}
