package repository

import (
	"context"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// ProductoRepository define el puerto de lectura del catálogo de productos.
// El catálogo se administra fuera del motor; aquí solo se consulta.
type ProductoRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	ListActivos(ctx context.Context) ([]*entity.Producto, error)
}
