package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// CostoProyecto agrupa los costos de un centro de costo para un periodo.
// CostoBruto valora todo lo retirado al costo unitario congelado en cada
// movimiento; CostoConsumido descuenta lo devuelto reutilizable; CostoMerma
// valora solo las devoluciones NO_REUTILIZABLE.
type CostoProyecto struct {
	ProyectoID     string
	CostoBruto     decimal.Decimal
	CostoConsumido decimal.Decimal
	CostoMerma     decimal.Decimal
}

// CalcularCostos agrega los movimientos de un periodo por proyecto.
// Son sumas puras sobre el conjunto de entrada: el resultado es asociativo e
// invariante ante permutaciones de la secuencia. Los AJUSTE no imputan costo
// a proyectos (son correcciones de inventario, no consumo).
func CalcularCostos(movs []*entity.MovimientoInventario) map[string]*CostoProyecto {
	porProyecto := make(map[string]*CostoProyecto)

	acum := func(proyectoID string) *CostoProyecto {
		c, ok := porProyecto[proyectoID]
		if !ok {
			c = &CostoProyecto{ProyectoID: proyectoID}
			porProyecto[proyectoID] = c
		}
		return c
	}

	for _, m := range movs {
		valor := decimal.NewFromInt(m.Cantidad).Mul(m.CostoUnitario)
		switch m.Tipo {
		case entity.MovimientoRetiro:
			c := acum(m.ProyectoID)
			c.CostoBruto = c.CostoBruto.Add(valor)
			c.CostoConsumido = c.CostoConsumido.Add(valor)
		case entity.MovimientoDevolucion:
			c := acum(m.ProyectoID)
			if m.EsMerma() {
				c.CostoMerma = c.CostoMerma.Add(valor)
			} else {
				c.CostoConsumido = c.CostoConsumido.Sub(valor)
			}
		}
	}
	return porProyecto
}

// TotalCostos colapsa el mapa por proyecto en un único agregado (los totales
// que persiste la liquidación de la sede).
func TotalCostos(porProyecto map[string]*CostoProyecto) (bruto, consumido, merma decimal.Decimal) {
	for _, c := range porProyecto {
		bruto = bruto.Add(c.CostoBruto)
		consumido = consumido.Add(c.CostoConsumido)
		merma = merma.Add(c.CostoMerma)
	}
	return bruto, consumido, merma
}
