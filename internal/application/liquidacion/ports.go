package liquidacion

import (
	"context"

	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La liquidación corre completa dentro de una
// sola transacción: o se escribe exactamente un registro, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		liqRepo repository.LiquidacionRepository,
	) error) error
}

// Config parámetros del motor de liquidación.
type Config struct {
	// ToleranciaConsistencia delta por producto admitido por la verificación
	// central antes de marcar INCONSISTENTE. Cero por defecto: cuadre exacto.
	ToleranciaConsistencia int64

	// PermitirFueraDeVentana deja que ADMIN y JEFA liquiden fuera de la
	// ventana sábado–lunes. El periodo objetivo no cambia. Apagado por defecto.
	PermitirFueraDeVentana bool
}
