package liquidacion

import (
	"context"
	"time"

	"github.com/jhoicas/Liquidacion-api/internal/application/dto"
	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	domliq "github.com/jhoicas/Liquidacion-api/internal/domain/liquidacion"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// ConsultaLiquidacionUseCase read models de liquidación: registro puntual,
// historial filtrado con resumen y el estado de la ventana para el dashboard.
// Solo lectura; nunca muta registros.
type ConsultaLiquidacionUseCase struct {
	liqRepo  repository.LiquidacionRepository
	sedeRepo repository.SedeRepository
}

// NewConsultaLiquidacionUseCase construye el caso de uso de consultas.
func NewConsultaLiquidacionUseCase(liqRepo repository.LiquidacionRepository, sedeRepo repository.SedeRepository) *ConsultaLiquidacionUseCase {
	return &ConsultaLiquidacionUseCase{liqRepo: liqRepo, sedeRepo: sedeRepo}
}

// Obtener devuelve la liquidación de una sede para un periodo, o ErrNotFound.
func (uc *ConsultaLiquidacionUseCase) Obtener(ctx context.Context, sedeID string, semana, anio int) (*dto.LiquidacionResponse, error) {
	liq, err := uc.liqRepo.GetBySedePeriodo(ctx, sedeID, semana, anio)
	if err != nil {
		return nil, err
	}
	if liq == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToLiquidacionResponse(liq), nil
}

// Historial lista liquidaciones con filtros y calcula el resumen agregado
// (totales de costo y cuántas cerraron con discrepancias).
func (uc *ConsultaLiquidacionUseCase) Historial(ctx context.Context, filtro repository.FiltroLiquidaciones) ([]*dto.LiquidacionResponse, *dto.ResumenLiquidacionesDTO, error) {
	liqs, err := uc.liqRepo.List(ctx, filtro)
	if err != nil {
		return nil, nil, err
	}

	resumen := &dto.ResumenLiquidacionesDTO{}
	out := make([]*dto.LiquidacionResponse, 0, len(liqs))
	for _, l := range liqs {
		out = append(out, dto.ToLiquidacionResponse(l))
		resumen.Total++
		if l.Estado == entity.EstadoInconsistente || len(l.Discrepancias) > 0 {
			resumen.ConDiscrepancias++
		}
		resumen.CostoBruto = resumen.CostoBruto.Add(l.CostoBruto)
		resumen.CostoConsumido = resumen.CostoConsumido.Add(l.CostoConsumido)
		resumen.CostoMerma = resumen.CostoMerma.Add(l.CostoMerma)
	}
	return out, resumen, nil
}

// EstadoVentana arma los datos del dashboard: si hoy se puede liquidar, qué
// semana toca, y qué sedes ya cerraron ese periodo.
func (uc *ConsultaLiquidacionUseCase) EstadoVentana(ctx context.Context, hoy time.Time) (*dto.EstadoVentanaResponse, error) {
	ventana := domliq.VentanaHoy(hoy)
	periodo := domliq.PeriodoObjetivo(hoy)

	sedes, err := uc.sedeRepo.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	liqs, err := uc.liqRepo.ListByPeriodo(ctx, periodo.Semana, periodo.Anio)
	if err != nil {
		return nil, err
	}
	porSede := make(map[string]*entity.Liquidacion, len(liqs))
	for _, l := range liqs {
		porSede[l.SedeID] = l
	}

	resp := &dto.EstadoVentanaResponse{
		Permitido: ventana.Permitido,
		Mensaje:   ventana.Mensaje,
		Semana:    periodo.Semana,
		Anio:      periodo.Anio,
		Desde:     periodo.Desde,
		Hasta:     periodo.Hasta,
	}
	for _, s := range sedes {
		estado := dto.EstadoSedeDTO{SedeID: s.ID, Nombre: s.Nombre, Tipo: s.Tipo}
		if l, ok := porSede[s.ID]; ok {
			estado.Liquidada = true
			estado.Estado = l.Estado
		}
		resp.Sedes = append(resp.Sedes, estado)
	}
	return resp, nil
}
