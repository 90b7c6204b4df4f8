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

var _ repository.SedeRepository = (*SedeRepo)(nil)

const sedeColumns = `id, nombre, tipo, activo, created_at`

// SedeRepo lectura de sedes sobre PostgreSQL.
type SedeRepo struct {
	q Querier
}

// NewSedeRepository construye el adaptador.
func NewSedeRepository(q Querier) *SedeRepo {
	return &SedeRepo{q: q}
}

// GetByID obtiene una sede por ID. ErrNotFound si no existe.
func (r *SedeRepo) GetByID(ctx context.Context, id string) (*entity.Sede, error) {
	query := `SELECT ` + sedeColumns + ` FROM sedes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetCentral devuelve la única sede CENTRAL activa.
func (r *SedeRepo) GetCentral(ctx context.Context) (*entity.Sede, error) {
	query := `SELECT ` + sedeColumns + ` FROM sedes WHERE tipo = $1 AND activo = true`
	return r.scanOne(r.q.QueryRow(ctx, query, entity.SedeCentral))
}

// ListActivas lista todas las sedes activas.
func (r *SedeRepo) ListActivas(ctx context.Context) ([]*entity.Sede, error) {
	query := `SELECT ` + sedeColumns + ` FROM sedes WHERE activo = true ORDER BY nombre ASC`
	return r.list(ctx, query)
}

// ListSecundariasActivas lista las sedes secundarias activas (el universo
// que el cierre central exige que esté liquidado).
func (r *SedeRepo) ListSecundariasActivas(ctx context.Context) ([]*entity.Sede, error) {
	query := `SELECT ` + sedeColumns + ` FROM sedes WHERE tipo = $1 AND activo = true ORDER BY nombre ASC`
	return r.list(ctx, query, entity.SedeSecundaria)
}

func (r *SedeRepo) scanOne(row pgx.Row) (*entity.Sede, error) {
	var s entity.Sede
	err := row.Scan(&s.ID, &s.Nombre, &s.Tipo, &s.Activo, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sede: %w", err)
	}
	return &s, nil
}

func (r *SedeRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sede, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sedes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sede
	for rows.Next() {
		var s entity.Sede
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Tipo, &s.Activo, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sede: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
