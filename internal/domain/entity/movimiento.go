package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex.
const (
	MovimientoRetiro     = "RETIRO"     // técnico retira material de la sede
	MovimientoDevolucion = "DEVOLUCION" // técnico devuelve material
	MovimientoAjuste     = "AJUSTE"     // corrección manual (cantidad con signo)
)

// Condición del material devuelto. Obligatoria cuando Tipo = DEVOLUCION.
const (
	CondicionReutilizable   = "REUTILIZABLE"
	CondicionNoReutilizable = "NO_REUTILIZABLE"
)

// MovimientoInventario es una entrada del kardex por sede y producto.
// El kardex es append-only: un movimiento se crea una vez y nunca se edita ni
// se borra; las correcciones son nuevos movimientos AJUSTE. Los saldos se
// derivan releyendo el historial, nunca se almacenan como contadores mutables.
type MovimientoInventario struct {
	ID         string
	SedeID     string
	ProductoID string
	ProyectoID string // centro de costo al que se imputa el retiro
	Tipo       string // RETIRO | DEVOLUCION | AJUSTE

	// Cantidad en unidades del producto. Positiva para RETIRO y DEVOLUCION
	// (el tipo determina el signo sobre el saldo); con signo para AJUSTE.
	Cantidad int64

	// Condición solo para DEVOLUCION: REUTILIZABLE vuelve al stock,
	// NO_REUTILIZABLE se acumula como merma.
	Condicion string

	// Costo unitario congelado al momento de registrar el movimiento, copiado
	// del catálogo. Las liquidaciones históricas no varían si el catálogo
	// cambia de precio después.
	CostoUnitario decimal.Decimal

	Fecha     time.Time
	Actor     string // técnico/usuario que ejecutó el movimiento
	Nota      string
	CreatedAt time.Time
}

// EsMerma indica si el movimiento acumula merma en lugar de stock.
func (m *MovimientoInventario) EsMerma() bool {
	return m.Tipo == MovimientoDevolucion && m.Condicion == CondicionNoReutilizable
}
