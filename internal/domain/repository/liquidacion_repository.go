package repository

import (
	"context"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// FiltroLiquidaciones filtros opcionales para el historial de liquidaciones.
// Cero valores significan "sin filtro".
type FiltroLiquidaciones struct {
	SedeID string
	Semana int
	Anio   int
	Limit  int
	Offset int
}

// LiquidacionRepository define el puerto de persistencia de liquidaciones.
//
// Create debe ser un insert condicional atómico: la tabla lleva un índice
// único por (sede, semana, anio), y una violación se traduce a
// domain.ErrYaLiquidado. Así dos intentos concurrentes sobre el mismo
// (sede, periodo) nunca ganan los dos.
type LiquidacionRepository interface {
	Create(ctx context.Context, liq *entity.Liquidacion) error
	GetBySedePeriodo(ctx context.Context, sedeID string, semana, anio int) (*entity.Liquidacion, error)
	// ListByPeriodo devuelve todas las liquidaciones de la semana (para la
	// verificación de consistencia del central).
	ListByPeriodo(ctx context.Context, semana, anio int) ([]*entity.Liquidacion, error)
	List(ctx context.Context, filtro FiltroLiquidaciones) ([]*entity.Liquidacion, error)
	CreateLog(ctx context.Context, log *entity.LiquidacionLog) error
}
