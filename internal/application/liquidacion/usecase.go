package liquidacion

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/ledger"
	domliq "github.com/jhoicas/Liquidacion-api/internal/domain/liquidacion"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// LiquidarUseCase orquesta el cierre semanal por sede: verifica las dos
// puertas (acceso y ventana), reproduce el kardex del periodo, calcula costos
// y totales por producto y persiste el registro inmutable en una sola
// transacción. Para el central añade la verificación de consistencia global.
type LiquidarUseCase struct {
	txRunner TxRunner
	sedeRepo repository.SedeRepository
	cfg      Config
}

// NewLiquidarUseCase construye el motor de liquidación.
func NewLiquidarUseCase(txRunner TxRunner, sedeRepo repository.SedeRepository, cfg Config) *LiquidarUseCase {
	return &LiquidarUseCase{txRunner: txRunner, sedeRepo: sedeRepo, cfg: cfg}
}

// LiquidarSede cierra el periodo anterior de una sede SECUNDARIA con estado
// LIQUIDADO. La fecha de evaluación se pasa explícita (sin reloj ambiente).
// Toda falla previa a la escritura deja el almacenamiento intacto.
func (uc *LiquidarUseCase) LiquidarSede(
	ctx context.Context,
	actor entity.Autoridad,
	sedeID string,
	hoy time.Time,
	observaciones string,
) (*entity.Liquidacion, error) {

	periodo, err := uc.pasarPuertas(actor, sedeID, hoy)
	if err != nil {
		return nil, err
	}

	sede, err := uc.sedeRepo.GetByID(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	if sede.EsCentral() {
		return nil, domain.NewValidacion("sede_id", "el almacén central se cierra con la liquidación central")
	}

	var liq *entity.Liquidacion
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovimientoRepository, liqRepo repository.LiquidacionRepository) error {
		if err := verificarNoLiquidado(ctx, liqRepo, sedeID, periodo); err != nil {
			return err
		}
		cierre, err := cerrarKardex(ctx, movRepo, sedeID, periodo)
		if err != nil {
			return err
		}
		liq = construirLiquidacion(sede.ID, periodo, entity.EstadoLiquidado, cierre, actor.ActorID, observaciones)
		if err := liqRepo.Create(ctx, liq); err != nil {
			return err
		}
		return registrarLog(ctx, liqRepo, entity.LogLiquidacionSede, liq, 0)
	})
	if err != nil {
		return nil, err
	}
	return liq, nil
}

// LiquidarCentral cierra el periodo del almacén central. Además del cierre de
// su propio kardex, cruza la suma de los cierres de todas las sedes
// secundarias contra los saldos vivos: el estado resultante es CONSISTENTE,
// INCONSISTENTE (con el detalle de diferencias) o REVISAR (sedes sin liquidar).
func (uc *LiquidarUseCase) LiquidarCentral(
	ctx context.Context,
	actor entity.Autoridad,
	hoy time.Time,
	observaciones string,
) (*entity.Liquidacion, error) {

	central, err := uc.sedeRepo.GetCentral(ctx)
	if err != nil {
		return nil, err
	}
	if central == nil {
		return nil, domain.ErrNotFound
	}

	periodo, err := uc.pasarPuertas(actor, central.ID, hoy)
	if err != nil {
		return nil, err
	}

	secundarias, err := uc.sedeRepo.ListSecundariasActivas(ctx)
	if err != nil {
		return nil, err
	}

	var liq *entity.Liquidacion
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovimientoRepository, liqRepo repository.LiquidacionRepository) error {
		if err := verificarNoLiquidado(ctx, liqRepo, central.ID, periodo); err != nil {
			return err
		}
		cierre, err := cerrarKardex(ctx, movRepo, central.ID, periodo)
		if err != nil {
			return err
		}

		// Saldo directo del central: lo que su propio kardex dice que queda.
		directo := make(map[string]int64, len(cierre.finales))
		for productoID, s := range cierre.finales {
			directo[productoID] = s.Disponible
		}

		// Saldo global fresco: reproducción del kardex de todas las sedes al
		// corte del periodo. Las liquidaciones secundarias son fotos
		// congeladas; si un kardex recibió eventos retroactivos después de
		// cerrarse, aquí aflora la diferencia.
		corte := finDePeriodo(periodo)
		global := make(map[string]int64, len(directo))
		for productoID, saldo := range directo {
			global[productoID] = saldo
		}
		var idsSecundarias []string
		for _, s := range secundarias {
			idsSecundarias = append(idsSecundarias, s.ID)
			movs, err := movRepo.ListBySedeHasta(ctx, s.ID, corte)
			if err != nil {
				return err
			}
			for productoID, saldo := range ledger.SaldosPorProducto(movs) {
				global[productoID] += saldo.Disponible
			}
		}

		// Cierres congelados de las secundarias para el mismo periodo.
		delPeriodo, err := liqRepo.ListByPeriodo(ctx, periodo.Semana, periodo.Anio)
		if err != nil {
			return err
		}
		cierres := make(map[string]*entity.Liquidacion, len(delPeriodo))
		for _, l := range delPeriodo {
			if l.SedeID != central.ID {
				cierres[l.SedeID] = l
			}
		}

		resultado, err := domliq.Verificar(global, directo, idsSecundarias, cierres, uc.cfg.ToleranciaConsistencia)
		if err != nil {
			// Registro secundario en estado inesperado: bug de integridad,
			// se aborta sin escribir nada.
			return err
		}

		liq = construirLiquidacion(central.ID, periodo, resultado.Estado, cierre, actor.ActorID, observaciones)
		liq.Discrepancias = resultado.Discrepancias
		if resultado.Motivo != "" {
			if liq.Observaciones != "" {
				liq.Observaciones += "; "
			}
			liq.Observaciones += resultado.Motivo
		}
		if err := liqRepo.Create(ctx, liq); err != nil {
			return err
		}
		return registrarLog(ctx, liqRepo, entity.LogLiquidacionCentral, liq, len(resultado.Discrepancias))
	})
	if err != nil {
		return nil, err
	}
	return liq, nil
}

// pasarPuertas evalúa Access Gate y Temporal Gate. Ambas deben pasar; la
// denegación siempre lleva motivo distinguible.
func (uc *LiquidarUseCase) pasarPuertas(actor entity.Autoridad, sedeID string, hoy time.Time) (entity.Periodo, error) {
	decision := domliq.Autorizar(actor, sedeID)
	if !decision.Permitido {
		return entity.Periodo{}, domain.NewDenegado(decision.Motivo, decision.Mensaje)
	}

	ventana := domliq.VentanaHoy(hoy)
	if !ventana.Permitido {
		override := uc.cfg.PermitirFueraDeVentana &&
			(actor.Rol == entity.RolAdmin || actor.Rol == entity.RolJefa)
		if !override {
			return entity.Periodo{}, domain.NewDenegado(domain.MotivoDiaBloqueado, ventana.Mensaje)
		}
		return domliq.PeriodoObjetivo(hoy), nil
	}
	return ventana.Periodo, nil
}

// cierreKardex resultado de reproducir el kardex de una sede para un periodo.
type cierreKardex struct {
	iniciales map[string]ledger.Saldo
	finales   map[string]ledger.Saldo
	resumen   map[string]*ledger.ResumenProducto
	bruto     decimal.Decimal
	consumido decimal.Decimal
	merma     decimal.Decimal
}

// cerrarKardex lee una sola vez el kardex de la sede hasta el fin del periodo
// y deriva saldos iniciales, finales, resumen por producto y costos. Cualquier
// devolución con condición fuera de dominio aborta con ErrInvariante.
func cerrarKardex(ctx context.Context, movRepo repository.MovimientoRepository, sedeID string, periodo entity.Periodo) (*cierreKardex, error) {
	todos, err := movRepo.ListBySedeHasta(ctx, sedeID, finDePeriodo(periodo))
	if err != nil {
		return nil, err
	}

	var previos, delPeriodo []*entity.MovimientoInventario
	for _, m := range todos {
		if m.Fecha.Before(periodo.Desde) {
			previos = append(previos, m)
		} else {
			delPeriodo = append(delPeriodo, m)
		}
	}

	for _, m := range delPeriodo {
		if m.Tipo == entity.MovimientoDevolucion {
			if _, err := ledger.Clasificar(m.Condicion); err != nil {
				return nil, err
			}
		}
	}

	c := &cierreKardex{
		iniciales: ledger.SaldosPorProducto(previos),
		finales:   ledger.SaldosPorProducto(todos),
		resumen:   ledger.ResumirPorProducto(delPeriodo),
	}
	c.bruto, c.consumido, c.merma = ledger.TotalCostos(ledger.CalcularCostos(delPeriodo))
	return c, nil
}

// construirLiquidacion arma el registro inmutable con el detalle por producto.
func construirLiquidacion(
	sedeID string,
	periodo entity.Periodo,
	estado string,
	cierre *cierreKardex,
	actorID string,
	observaciones string,
) *entity.Liquidacion {

	productos := make(map[string]struct{}, len(cierre.finales))
	for p := range cierre.iniciales {
		productos[p] = struct{}{}
	}
	for p := range cierre.finales {
		productos[p] = struct{}{}
	}

	detalle := make([]entity.LiquidacionDetalle, 0, len(productos))
	for productoID := range productos {
		r := cierre.resumen[productoID]
		if r == nil {
			r = &ledger.ResumenProducto{ProductoID: productoID}
		}
		detalle = append(detalle, entity.LiquidacionDetalle{
			ProductoID:       productoID,
			StockInicial:     cierre.iniciales[productoID].Disponible,
			StockFinal:       cierre.finales[productoID].Disponible,
			CantidadRetirada: r.Retirado,
			CantidadDevuelta: r.Devuelto,
			CantidadMerma:    r.Merma,
			CantidadUsada:    r.Usado(),
		})
	}
	sort.Slice(detalle, func(i, j int) bool { return detalle[i].ProductoID < detalle[j].ProductoID })

	return &entity.Liquidacion{
		ID:             uuid.New().String(),
		SedeID:         sedeID,
		Semana:         periodo.Semana,
		Anio:           periodo.Anio,
		Desde:          periodo.Desde,
		Hasta:          periodo.Hasta,
		Estado:         estado,
		CostoBruto:     cierre.bruto,
		CostoConsumido: cierre.consumido,
		CostoMerma:     cierre.merma,
		Detalle:        detalle,
		LiquidadoPor:   actorID,
		Observaciones:  observaciones,
		CreatedAt:      time.Now(),
	}
}

// verificarNoLiquidado rechaza si ya existe un registro para (sede, periodo).
// Los registros solo nacen en estado terminal, así que cualquier existente
// significa ErrYaLiquidado. El índice único de la tabla cubre la carrera entre
// esta lectura y el insert.
func verificarNoLiquidado(ctx context.Context, liqRepo repository.LiquidacionRepository, sedeID string, periodo entity.Periodo) error {
	existente, err := liqRepo.GetBySedePeriodo(ctx, sedeID, periodo.Semana, periodo.Anio)
	if err != nil {
		return err
	}
	if existente != nil {
		return domain.ErrYaLiquidado
	}
	return nil
}

func registrarLog(ctx context.Context, liqRepo repository.LiquidacionRepository, tipo string, liq *entity.Liquidacion, discrepancias int) error {
	return liqRepo.CreateLog(ctx, &entity.LiquidacionLog{
		ID:                      uuid.New().String(),
		Tipo:                    tipo,
		Semana:                  liq.Semana,
		Anio:                    liq.Anio,
		SedeID:                  liq.SedeID,
		UsuarioID:               liq.LiquidadoPor,
		Descripcion:             fmt.Sprintf("liquidación sede %s Sem %d/%d", liq.SedeID, liq.Semana, liq.Anio),
		ProductosProcesados:     len(liq.Detalle),
		DiscrepanciasDetectadas: discrepancias,
		CreatedAt:               time.Now(),
	})
}

// finDePeriodo devuelve el último instante del domingo del periodo.
func finDePeriodo(p entity.Periodo) time.Time {
	return p.Hasta.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
