package entity

import "time"

// Roles de acceso. "admin" habilita columnas de costo, exportaciones y
// acciones destructivas; el resto de los usuarios opera como vendedor.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// Usuario cuenta interna del sistema.
type Usuario struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Activo       bool
	CreatedAt    time.Time
}
