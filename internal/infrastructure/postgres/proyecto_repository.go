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

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

const proyectoColumns = `id, codigo, nombre, activo, created_at`

// ProyectoRepo lectura de proyectos (centros de costo) sobre PostgreSQL.
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador.
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

// GetByID obtiene un proyecto por ID. ErrNotFound si no existe.
func (r *ProyectoRepo) GetByID(ctx context.Context, id string) (*entity.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + ` FROM proyectos WHERE id = $1`
	var p entity.Proyecto
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Activo, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get proyecto: %w", err)
	}
	return &p, nil
}

// ListActivos lista los proyectos activos ordenados por código.
func (r *ProyectoRepo) ListActivos(ctx context.Context) ([]*entity.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + ` FROM proyectos WHERE activo = true ORDER BY codigo ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Proyecto
	for rows.Next() {
		var p entity.Proyecto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Activo, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
