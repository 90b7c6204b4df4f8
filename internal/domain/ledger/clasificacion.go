package ledger

import (
	"fmt"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// Destino de un material devuelto.
type Destino int

const (
	DestinoStock Destino = iota // vuelve al inventario disponible
	DestinoMerma                // pérdida, no vuelve al stock
)

// Clasificar mapea la condición de una devolución a su destino:
// REUTILIZABLE → stock, NO_REUTILIZABLE → merma. Es una función pura y total
// sobre el dominio de dos valores; cualquier otra condición indica un bug de
// integridad de datos (el registro valida la condición al anexar) y devuelve
// ErrInvariante, nunca un error de usuario.
func Clasificar(condicion string) (Destino, error) {
	switch condicion {
	case entity.CondicionReutilizable:
		return DestinoStock, nil
	case entity.CondicionNoReutilizable:
		return DestinoMerma, nil
	default:
		return 0, fmt.Errorf("%w: condición de devolución desconocida %q", domain.ErrInvariante, condicion)
	}
}
