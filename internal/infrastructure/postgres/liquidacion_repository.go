package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

var _ repository.LiquidacionRepository = (*LiquidacionRepo)(nil)

const liquidacionColumns = `id, sede_id, semana, anio, desde, hasta, estado, costo_bruto, costo_consumido, costo_merma, liquidado_por, observaciones, created_at`

// LiquidacionRepo implementación sobre PostgreSQL (usable con pool o tx).
// El índice único uq_liquidacion_sede_periodo respalda el insert condicional:
// una violación se traduce a domain.ErrYaLiquidado.
type LiquidacionRepo struct {
	q Querier
}

// NewLiquidacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLiquidacionRepository(q Querier) *LiquidacionRepo {
	return &LiquidacionRepo{q: q}
}

// Create persiste la liquidación con su detalle y discrepancias.
// Debe llamarse dentro de una transacción (TxRunner) para que el registro
// maestro y sus líneas se escriban como una unidad.
func (r *LiquidacionRepo) Create(ctx context.Context, liq *entity.Liquidacion) error {
	if liq.ID == "" {
		liq.ID = uuid.New().String()
	}
	query := `
		INSERT INTO liquidaciones (` + liquidacionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		liq.ID, liq.SedeID, liq.Semana, liq.Anio, liq.Desde, liq.Hasta, liq.Estado,
		liq.CostoBruto, liq.CostoConsumido, liq.CostoMerma,
		liq.LiquidadoPor, liq.Observaciones, liq.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrYaLiquidado
		}
		return fmt.Errorf("create liquidacion: %w", err)
	}

	for _, d := range liq.Detalle {
		_, err := r.q.Exec(ctx, `
			INSERT INTO liquidacion_detalle
				(liquidacion_id, producto_id, stock_inicial, stock_final, cantidad_retirada, cantidad_devuelta, cantidad_merma, cantidad_usada)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			liq.ID, d.ProductoID, d.StockInicial, d.StockFinal,
			d.CantidadRetirada, d.CantidadDevuelta, d.CantidadMerma, d.CantidadUsada,
		)
		if err != nil {
			return fmt.Errorf("create liquidacion detalle: %w", err)
		}
	}
	for _, d := range liq.Discrepancias {
		_, err := r.q.Exec(ctx, `
			INSERT INTO liquidacion_discrepancias (liquidacion_id, producto_id, esperado, real, delta)
			VALUES ($1, $2, $3, $4, $5)`,
			liq.ID, d.ProductoID, d.Esperado, d.Real, d.Delta,
		)
		if err != nil {
			return fmt.Errorf("create liquidacion discrepancia: %w", err)
		}
	}
	return nil
}

// GetBySedePeriodo obtiene la liquidación de una sede para un periodo, con
// detalle y discrepancias. Devuelve nil si no existe.
func (r *LiquidacionRepo) GetBySedePeriodo(ctx context.Context, sedeID string, semana, anio int) (*entity.Liquidacion, error) {
	query := `
		SELECT ` + liquidacionColumns + `
		FROM liquidaciones WHERE sede_id = $1 AND semana = $2 AND anio = $3`
	liq, err := r.scanOne(r.q.QueryRow(ctx, query, sedeID, semana, anio))
	if err != nil {
		return nil, err
	}
	if liq == nil {
		return nil, nil
	}
	if err := r.cargarLineas(ctx, liq); err != nil {
		return nil, err
	}
	return liq, nil
}

// ListByPeriodo devuelve todas las liquidaciones de la semana, con detalle.
func (r *LiquidacionRepo) ListByPeriodo(ctx context.Context, semana, anio int) ([]*entity.Liquidacion, error) {
	query := `
		SELECT ` + liquidacionColumns + `
		FROM liquidaciones WHERE semana = $1 AND anio = $2
		ORDER BY created_at ASC`
	return r.listWithLineas(ctx, query, semana, anio)
}

// List devuelve el historial con filtros opcionales, más reciente primero.
func (r *LiquidacionRepo) List(ctx context.Context, f repository.FiltroLiquidaciones) ([]*entity.Liquidacion, error) {
	query := `SELECT ` + liquidacionColumns + ` FROM liquidaciones WHERE 1=1`
	args := []any{}
	pos := 1
	if f.SedeID != "" {
		query += fmt.Sprintf(" AND sede_id = $%d", pos)
		args = append(args, f.SedeID)
		pos++
	}
	if f.Semana != 0 {
		query += fmt.Sprintf(" AND semana = $%d", pos)
		args = append(args, f.Semana)
		pos++
	}
	if f.Anio != 0 {
		query += fmt.Sprintf(" AND anio = $%d", pos)
		args = append(args, f.Anio)
		pos++
	}
	query += " ORDER BY anio DESC, semana DESC, created_at DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}
	return r.listWithLineas(ctx, query, args...)
}

// CreateLog registra la entrada de auditoría de una corrida de liquidación.
func (r *LiquidacionRepo) CreateLog(ctx context.Context, log *entity.LiquidacionLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	sedeID := (*string)(nil)
	if log.SedeID != "" {
		sedeID = &log.SedeID
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO liquidacion_log
			(id, tipo, semana, anio, sede_id, usuario_id, descripcion, productos_procesados, discrepancias_detectadas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		log.ID, log.Tipo, log.Semana, log.Anio, sedeID, log.UsuarioID,
		log.Descripcion, log.ProductosProcesados, log.DiscrepanciasDetectadas, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create liquidacion log: %w", err)
	}
	return nil
}

func (r *LiquidacionRepo) scanOne(row pgx.Row) (*entity.Liquidacion, error) {
	var l entity.Liquidacion
	err := row.Scan(&l.ID, &l.SedeID, &l.Semana, &l.Anio, &l.Desde, &l.Hasta, &l.Estado,
		&l.CostoBruto, &l.CostoConsumido, &l.CostoMerma,
		&l.LiquidadoPor, &l.Observaciones, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan liquidacion: %w", err)
	}
	return &l, nil
}

func (r *LiquidacionRepo) listWithLineas(ctx context.Context, query string, args ...any) ([]*entity.Liquidacion, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list liquidaciones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Liquidacion
	for rows.Next() {
		var l entity.Liquidacion
		if err := rows.Scan(&l.ID, &l.SedeID, &l.Semana, &l.Anio, &l.Desde, &l.Hasta, &l.Estado,
			&l.CostoBruto, &l.CostoConsumido, &l.CostoMerma,
			&l.LiquidadoPor, &l.Observaciones, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan liquidacion: %w", err)
		}
		list = append(list, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, l := range list {
		if err := r.cargarLineas(ctx, l); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *LiquidacionRepo) cargarLineas(ctx context.Context, liq *entity.Liquidacion) error {
	rows, err := r.q.Query(ctx, `
		SELECT producto_id, stock_inicial, stock_final, cantidad_retirada, cantidad_devuelta, cantidad_merma, cantidad_usada
		FROM liquidacion_detalle WHERE liquidacion_id = $1 ORDER BY producto_id ASC`, liq.ID)
	if err != nil {
		return fmt.Errorf("list detalle: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.LiquidacionDetalle
		if err := rows.Scan(&d.ProductoID, &d.StockInicial, &d.StockFinal,
			&d.CantidadRetirada, &d.CantidadDevuelta, &d.CantidadMerma, &d.CantidadUsada); err != nil {
			return fmt.Errorf("scan detalle: %w", err)
		}
		liq.Detalle = append(liq.Detalle, d)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	drows, err := r.q.Query(ctx, `
		SELECT producto_id, esperado, real, delta
		FROM liquidacion_discrepancias WHERE liquidacion_id = $1 ORDER BY producto_id ASC`, liq.ID)
	if err != nil {
		return fmt.Errorf("list discrepancias: %w", err)
	}
	defer drows.Close()
	for drows.Next() {
		var d entity.Discrepancia
		if err := drows.Scan(&d.ProductoID, &d.Esperado, &d.Real, &d.Delta); err != nil {
			return fmt.Errorf("scan discrepancia: %w", err)
		}
		liq.Discrepancias = append(liq.Discrepancias, d)
	}
	return drows.Err()
}
