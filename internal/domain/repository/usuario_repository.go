package repository

import (
	"context"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia de usuarios y su perfil
// de autoridad.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*entity.Usuario, error)
}
