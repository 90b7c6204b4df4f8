package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un material del catálogo (consumibles de planta externa:
// cable, conectores, grapas, etc.). Solo lo muta la gestión de catálogo; el
// motor de liquidación lo lee.
type Producto struct {
	ID            string
	Nombre        string
	CodigoInterno string          // ej: TC-ALM-000001
	Unidad        string          // UND, M, CAJA
	CostoUnitario decimal.Decimal // costo estándar de catálogo por unidad
	StockMinimo   int64
	Activo        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
