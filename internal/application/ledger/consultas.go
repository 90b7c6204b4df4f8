package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/Liquidacion-api/internal/application/dto"
	"github.com/jhoicas/Liquidacion-api/internal/domain"
	domledger "github.com/jhoicas/Liquidacion-api/internal/domain/ledger"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// ConsultaSaldoUseCase consultas de lectura sobre el kardex: saldo a una fecha
// y señales de reposición. Los saldos se derivan reproduciendo el historial,
// nunca de un contador almacenado.
type ConsultaSaldoUseCase struct {
	movRepo      repository.MovimientoRepository
	sedeRepo     repository.SedeRepository
	productoRepo repository.ProductoRepository
}

// NewConsultaSaldoUseCase construye el caso de uso de consultas.
func NewConsultaSaldoUseCase(
	movRepo repository.MovimientoRepository,
	sedeRepo repository.SedeRepository,
	productoRepo repository.ProductoRepository,
) *ConsultaSaldoUseCase {
	return &ConsultaSaldoUseCase{movRepo: movRepo, sedeRepo: sedeRepo, productoRepo: productoRepo}
}

// SaldoALaFecha reproduce los movimientos con fecha <= hasta y devuelve el
// saldo {disponible, merma} de la pareja (sede, producto).
func (uc *ConsultaSaldoUseCase) SaldoALaFecha(ctx context.Context, sedeID, productoID string, hasta time.Time) (*dto.SaldoResponse, error) {
	sede, err := uc.sedeRepo.GetByID(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	producto, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	movs, err := uc.movRepo.ListBySedeProductoHasta(ctx, sedeID, productoID, hasta)
	if err != nil {
		return nil, err
	}
	saldo := domledger.Reproducir(movs)
	return &dto.SaldoResponse{
		SedeID:     sedeID,
		ProductoID: productoID,
		Hasta:      hasta,
		Disponible: saldo.Disponible,
		Merma:      saldo.Merma,
	}, nil
}

// AlertasDeSede evalúa el stock mínimo de todos los productos activos contra
// el saldo vivo de la sede y devuelve las señales de reposición. Sondeable:
// no guarda estado ni deduplica.
func (uc *ConsultaSaldoUseCase) AlertasDeSede(ctx context.Context, sedeID string) ([]dto.AlertaResponse, error) {
	sede, err := uc.sedeRepo.GetByID(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}

	productos, err := uc.productoRepo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.ListBySedeHasta(ctx, sedeID, time.Now())
	if err != nil {
		return nil, err
	}
	saldos := domledger.SaldosPorProducto(movs)

	alertas := make([]dto.AlertaResponse, 0)
	for _, p := range productos {
		if a := domledger.EvaluarMinimo(sede, p, saldos[p.ID]); a != nil {
			alertas = append(alertas, dto.AlertaResponse{
				SedeID:     a.SedeID,
				ProductoID: a.ProductoID,
				Disponible: a.Disponible,
				Minimo:     a.Minimo,
				Deficit:    a.Deficit,
			})
		}
	}
	return alertas, nil
}

// CostosDelPeriodo agrega los costos por proyecto de una sede en un rango de
// fechas (read model para reportes de centro de costo).
func (uc *ConsultaSaldoUseCase) CostosDelPeriodo(ctx context.Context, sedeID string, desde, hasta time.Time) ([]dto.CostoProyectoDTO, error) {
	sede, err := uc.sedeRepo.GetByID(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListBySedePeriodo(ctx, sedeID, desde, hasta)
	if err != nil {
		return nil, err
	}
	costos := domledger.CalcularCostos(movs)
	out := make([]dto.CostoProyectoDTO, 0, len(costos))
	for _, c := range costos {
		out = append(out, dto.CostoProyectoDTO{
			ProyectoID:     c.ProyectoID,
			CostoBruto:     c.CostoBruto,
			CostoConsumido: c.CostoConsumido,
			CostoMerma:     c.CostoMerma,
		})
	}
	return out, nil
}
