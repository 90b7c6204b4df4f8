package dto

import "time"

// RegisterRequest alta de usuario con su perfil de autoridad.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
	SedeID   string `json:"sede_id"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse vista pública de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	SedeID    string    `json:"sede_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token emitido más la vista del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
