package repository

import (
	"context"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// ProyectoRepository define el puerto de lectura de proyectos (centros de costo).
type ProyectoRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Proyecto, error)
	ListActivos(ctx context.Context) ([]*entity.Proyecto, error)
}
