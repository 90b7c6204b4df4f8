package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Liquidacion-api/internal/application/dto"
	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	domledger "github.com/jhoicas/Liquidacion-api/internal/domain/ledger"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// RegistrarMovimientoUseCase anexa movimientos al kardex. Valida antes de
// persistir: nada llega al almacenamiento si la entrada es inválida. El anexo
// no necesita transacción ni bloqueo: el kardex es append-only y los saldos se
// derivan en lectura, así que escrituras concurrentes de distintos actores no
// se coordinan.
type RegistrarMovimientoUseCase struct {
	movRepo      repository.MovimientoRepository
	sedeRepo     repository.SedeRepository
	productoRepo repository.ProductoRepository
	proyectoRepo repository.ProyectoRepository
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(
	movRepo repository.MovimientoRepository,
	sedeRepo repository.SedeRepository,
	productoRepo repository.ProductoRepository,
	proyectoRepo repository.ProyectoRepository,
) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{
		movRepo:      movRepo,
		sedeRepo:     sedeRepo,
		productoRepo: productoRepo,
		proyectoRepo: proyectoRepo,
	}
}

// Registrar valida y anexa un movimiento. Reglas:
//   - RETIRO y DEVOLUCION exigen cantidad > 0; AJUSTE exige cantidad != 0
//     (un ajuste puede corregir hacia abajo, un retiro o devolución no).
//   - DEVOLUCION exige condición REUTILIZABLE o NO_REUTILIZABLE.
//   - Sede, producto y proyecto (cuando aplica) deben existir.
//   - El costo unitario se congela desde el catálogo al momento del anexo.
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, actorID string, in dto.RegistrarMovimientoRequest) (*entity.MovimientoInventario, error) {
	switch in.Tipo {
	case entity.MovimientoRetiro, entity.MovimientoDevolucion:
		if in.Cantidad <= 0 {
			return nil, domain.NewValidacion("cantidad", "debe ser mayor que cero")
		}
	case entity.MovimientoAjuste:
		if in.Cantidad == 0 {
			return nil, domain.NewValidacion("cantidad", "un ajuste no puede ser cero")
		}
	default:
		return nil, domain.NewValidacion("tipo", "tipo de movimiento desconocido")
	}

	condicion := ""
	if in.Tipo == entity.MovimientoDevolucion {
		if in.Condicion == "" {
			return nil, domain.NewValidacion("condicion", "una devolución exige condición del material")
		}
		if _, err := domledger.Clasificar(in.Condicion); err != nil {
			return nil, domain.NewValidacion("condicion", "condición desconocida: use REUTILIZABLE o NO_REUTILIZABLE")
		}
		condicion = in.Condicion
	} else if in.Condicion != "" {
		return nil, domain.NewValidacion("condicion", "la condición solo aplica a devoluciones")
	}

	sede, err := uc.sedeRepo.GetByID(ctx, in.SedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.NewValidacion("sede_id", "la sede no existe")
	}
	producto, err := uc.productoRepo.GetByID(ctx, in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.NewValidacion("producto_id", "el producto no existe")
	}

	// El retiro siempre se imputa a un centro de costo; en devoluciones el
	// proyecto identifica a qué imputación se descuenta.
	if in.Tipo != entity.MovimientoAjuste {
		if in.ProyectoID == "" {
			return nil, domain.NewValidacion("proyecto_id", "retiros y devoluciones exigen proyecto")
		}
		proyecto, err := uc.proyectoRepo.GetByID(ctx, in.ProyectoID)
		if err != nil {
			return nil, err
		}
		if proyecto == nil {
			return nil, domain.NewValidacion("proyecto_id", "el proyecto no existe")
		}
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}

	mov := &entity.MovimientoInventario{
		ID:            uuid.New().String(),
		SedeID:        in.SedeID,
		ProductoID:    in.ProductoID,
		ProyectoID:    in.ProyectoID,
		Tipo:          in.Tipo,
		Cantidad:      in.Cantidad,
		Condicion:     condicion,
		CostoUnitario: producto.CostoUnitario,
		Fecha:         fecha,
		Actor:         actorID,
		Nota:          in.Nota,
		CreatedAt:     now,
	}
	if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}
