package entity

import "time"

// Roles del sistema (perfil de autoridad).
const (
	RolSolicitante = "SOLICITANTE" // técnico de campo: retira y devuelve, nunca liquida
	RolAlmacen     = "ALMACEN"     // encargado de almacén de una sede
	RolAdmin       = "ADMIN"
	RolJefa        = "JEFA" // jefatura global
)

// Usuario representa un usuario del sistema con su perfil de autoridad.
type Usuario struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Nombre       string
	Rol          string // SOLICITANTE | ALMACEN | ADMIN | JEFA
	SedeID       string // sede principal del usuario
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Autoridad es la vista resuelta que consume el Access Gate: rol, sede
// principal y si el actor tiene autoridad central (ALMACEN cuya sede es la
// CENTRAL). La provee el adaptador de identidad, no el motor.
type Autoridad struct {
	ActorID          string
	Rol              string
	SedeID           string
	AutoridadCentral bool
}
