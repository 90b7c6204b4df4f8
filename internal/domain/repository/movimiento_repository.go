package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia del kardex.
// Solo inserta y consulta: el kardex es append-only, sin update ni delete.
// Las consultas devuelven una lectura fresca en cada llamada (sin cursores
// retenidos), ordenada por fecha ascendente con desempate por ID.
type MovimientoRepository interface {
	Create(ctx context.Context, mov *entity.MovimientoInventario) error
	// ListBySedePeriodo devuelve los movimientos de la sede dentro del rango
	// cerrado de fechas [desde, hasta].
	ListBySedePeriodo(ctx context.Context, sedeID string, desde, hasta time.Time) ([]*entity.MovimientoInventario, error)
	// ListBySedeHasta devuelve todos los movimientos de la sede con fecha <= corte.
	ListBySedeHasta(ctx context.Context, sedeID string, corte time.Time) ([]*entity.MovimientoInventario, error)
	// ListBySedeProductoHasta restringe además a un producto.
	ListBySedeProductoHasta(ctx context.Context, sedeID, productoID string, corte time.Time) ([]*entity.MovimientoInventario, error)
}
