package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `id, sede_id, producto_id, proyecto_id, tipo, cantidad, condicion, costo_unitario, fecha, actor, nota, created_at`

// MovimientoRepo implementación del kardex sobre PostgreSQL (usable con pool o tx).
// Solo INSERT y SELECT: la tabla no tiene camino de UPDATE ni DELETE en el código.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create anexa un movimiento al kardex.
func (r *MovimientoRepo) Create(ctx context.Context, mov *entity.MovimientoInventario) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_inventario (` + movimientoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	proyectoID := (*string)(nil)
	if mov.ProyectoID != "" {
		proyectoID = &mov.ProyectoID
	}
	condicion := (*string)(nil)
	if mov.Condicion != "" {
		condicion = &mov.Condicion
	}
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.SedeID, mov.ProductoID, proyectoID, mov.Tipo, mov.Cantidad,
		condicion, mov.CostoUnitario, mov.Fecha, mov.Actor, mov.Nota, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListBySedePeriodo lista movimientos de la sede en el rango cerrado [desde, hasta],
// ordenados por fecha ascendente con desempate por id.
func (r *MovimientoRepo) ListBySedePeriodo(ctx context.Context, sedeID string, desde, hasta time.Time) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos_inventario
		WHERE sede_id = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha ASC, id ASC`
	return r.list(ctx, query, sedeID, desde, hasta)
}

// ListBySedeHasta lista todos los movimientos de la sede con fecha <= corte.
func (r *MovimientoRepo) ListBySedeHasta(ctx context.Context, sedeID string, corte time.Time) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos_inventario
		WHERE sede_id = $1 AND fecha <= $2
		ORDER BY fecha ASC, id ASC`
	return r.list(ctx, query, sedeID, corte)
}

// ListBySedeProductoHasta restringe además a un producto.
func (r *MovimientoRepo) ListBySedeProductoHasta(ctx context.Context, sedeID, productoID string, corte time.Time) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos_inventario
		WHERE sede_id = $1 AND producto_id = $2 AND fecha <= $3
		ORDER BY fecha ASC, id ASC`
	return r.list(ctx, query, sedeID, productoID, corte)
}

func (r *MovimientoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.MovimientoInventario, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		var proyectoID, condicion *string
		if err := rows.Scan(&m.ID, &m.SedeID, &m.ProductoID, &proyectoID, &m.Tipo, &m.Cantidad,
			&condicion, &m.CostoUnitario, &m.Fecha, &m.Actor, &m.Nota, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		if proyectoID != nil {
			m.ProyectoID = *proyectoID
		}
		if condicion != nil {
			m.Condicion = *condicion
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
