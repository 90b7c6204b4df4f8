package repository

import (
	"context"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// SedeRepository define el puerto de lectura de sedes.
type SedeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Sede, error)
	// GetCentral devuelve la única sede CENTRAL.
	GetCentral(ctx context.Context) (*entity.Sede, error)
	ListActivas(ctx context.Context) ([]*entity.Sede, error)
	ListSecundariasActivas(ctx context.Context) ([]*entity.Sede, error)
}
