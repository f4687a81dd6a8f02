package entity

// Roles válidos para User. Datos de referencia estáticos, solo lectura.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// Role es el nivel de autorización asignado a un usuario.
type Role struct {
	ID   int64
	Name string // CUSTOMER, ADMIN
}
