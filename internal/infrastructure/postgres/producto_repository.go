package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, codigo_interno, unidad, costo_unitario, stock_minimo, activo, created_at, updated_at`

// ProductoRepo lectura del catálogo de productos sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// GetByID obtiene un producto por ID. ErrNotFound si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nombre, &p.CodigoInterno, &p.Unidad, &p.CostoUnitario,
		&p.StockMinimo, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListActivos lista los productos activos ordenados por código interno.
func (r *ProductoRepo) ListActivos(ctx context.Context) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE activo = true ORDER BY codigo_interno ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.CodigoInterno, &p.Unidad, &p.CostoUnitario,
			&p.StockMinimo, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
