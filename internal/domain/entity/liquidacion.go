package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una liquidación. PENDIENTE es el único estado no terminal; una
// liquidación que alcanza cualquier otro estado nunca se recalcula en sitio.
const (
	EstadoPendiente     = "PENDIENTE"
	EstadoLiquidado     = "LIQUIDADO"     // sede secundaria cerrada
	EstadoConsistente   = "CONSISTENTE"   // central cerrada, cuadra con las sedes
	EstadoInconsistente = "INCONSISTENTE" // central cerrada con discrepancias
	EstadoRevisar       = "REVISAR"       // central cerrada, faltan sedes por liquidar
)

// Periodo identifica la semana calendario a liquidar: siempre una semana
// completa lunes–domingo, con su numeración ISO (semana, año).
type Periodo struct {
	Semana int
	Anio   int
	Desde  time.Time // lunes 00:00
	Hasta  time.Time // domingo (fecha, inclusive)
}

// String devuelve la etiqueta corta del periodo, ej. "Sem 37/2026".
func (p Periodo) String() string {
	return fmt.Sprintf("Sem %d/%d", p.Semana, p.Anio)
}

// Contiene indica si t cae dentro del rango cerrado [Desde, fin del Hasta].
func (p Periodo) Contiene(t time.Time) bool {
	finExclusivo := p.Hasta.AddDate(0, 0, 1)
	return !t.Before(p.Desde) && t.Before(finExclusivo)
}

// LiquidacionDetalle es la línea por producto de una liquidación: los totales
// del periodo derivados del kardex.
type LiquidacionDetalle struct {
	ProductoID       string
	StockInicial     int64
	StockFinal       int64
	CantidadRetirada int64
	CantidadDevuelta int64 // devoluciones REUTILIZABLE
	CantidadMerma    int64
	CantidadUsada    int64 // retirado - devuelto - merma
}

// Discrepancia describe un producto cuyo saldo central no cuadra contra la
// suma de los cierres de las sedes secundarias.
type Discrepancia struct {
	ProductoID string
	Esperado   int64
	Real       int64
	Delta      int64
}

// Liquidacion es el registro inmutable del cierre semanal de una sede (o del
// almacén central). Existe a lo sumo una no-PENDIENTE por (sede, periodo).
type Liquidacion struct {
	ID     string
	SedeID string
	Semana int
	Anio   int
	Desde  time.Time
	Hasta  time.Time

	Estado string

	// Totales calculados al cerrar.
	CostoBruto     decimal.Decimal // retiros valorados al costo congelado
	CostoConsumido decimal.Decimal // bruto menos devoluciones reutilizables
	CostoMerma     decimal.Decimal

	Detalle       []LiquidacionDetalle
	Discrepancias []Discrepancia // solo cuando Estado = INCONSISTENTE

	LiquidadoPor  string
	Observaciones string
	CreatedAt     time.Time
}

// EsTerminal indica si la liquidación ya alcanzó un estado final.
func (l *Liquidacion) EsTerminal() bool {
	return l.Estado != "" && l.Estado != EstadoPendiente
}

// Tipos de evento del log de liquidación.
const (
	LogLiquidacionSede    = "LIQUIDACION_SEDE"
	LogLiquidacionCentral = "LIQUIDACION_CENTRAL"
)

// LiquidacionLog es el registro de auditoría de cada corrida de liquidación.
type LiquidacionLog struct {
	ID                      string
	Tipo                    string
	Semana                  int
	Anio                    int
	SedeID                  string
	UsuarioID               string
	Descripcion             string
	ProductosProcesados     int
	DiscrepanciasDetectadas int
	CreatedAt               time.Time
}
