package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/ledger"
)

func movProyecto(id, tipo string, cantidad int64, condicion, proyectoID string, costo float64, offset time.Duration) *entity.MovimientoInventario {
	m := mov(id, tipo, cantidad, condicion, offset)
	m.ProyectoID = proyectoID
	m.CostoUnitario = decimal.NewFromFloat(costo)
	return m
}

// Retiro de 10 unidades a 2.00: bruto 20.00. Devolución reutilizable de 6
// descuenta 12.00 del consumido; la devolución no reutilizable de 4 vale 8.00
// de merma. Consumido final 8.00.
func TestCalcularCostos_BrutoConsumidoYMerma(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		movProyecto("m1", entity.MovimientoRetiro, 10, "", "py-1", 2.00, 0),
		movProyecto("m2", entity.MovimientoDevolucion, 6, entity.CondicionReutilizable, "py-1", 2.00, time.Hour),
		movProyecto("m3", entity.MovimientoDevolucion, 4, entity.CondicionNoReutilizable, "py-1", 2.00, 2*time.Hour),
	}

	costos := ledger.CalcularCostos(movs)
	c := costos["py-1"]
	require.NotNil(t, c)

	assert.True(t, c.CostoBruto.Equal(decimal.NewFromFloat(20.00)), "bruto = %s", c.CostoBruto)
	assert.True(t, c.CostoConsumido.Equal(decimal.NewFromFloat(8.00)), "consumido = %s", c.CostoConsumido)
	assert.True(t, c.CostoMerma.Equal(decimal.NewFromFloat(8.00)), "merma = %s", c.CostoMerma)
}

// Cada movimiento se valora al costo congelado en su registro, no al costo
// vigente del catálogo: dos retiros del mismo producto con costo distinto
// suman cada uno lo suyo.
func TestCalcularCostos_RespetaCostoCongelado(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		movProyecto("m1", entity.MovimientoRetiro, 5, "", "py-1", 1.50, 0),
		movProyecto("m2", entity.MovimientoRetiro, 5, "", "py-1", 2.50, time.Hour),
	}

	costos := ledger.CalcularCostos(movs)
	assert.True(t, costos["py-1"].CostoBruto.Equal(decimal.NewFromFloat(20.00)))
}

// Sumas puras: permutar la secuencia no cambia el resultado.
func TestCalcularCostos_InvarianteAntePermutaciones(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		movProyecto("m1", entity.MovimientoRetiro, 10, "", "py-1", 2.00, 0),
		movProyecto("m2", entity.MovimientoDevolucion, 3, entity.CondicionReutilizable, "py-1", 2.00, time.Hour),
		movProyecto("m3", entity.MovimientoRetiro, 7, "", "py-2", 1.25, 2*time.Hour),
		movProyecto("m4", entity.MovimientoDevolucion, 2, entity.CondicionNoReutilizable, "py-2", 1.25, 3*time.Hour),
	}
	permutado := []*entity.MovimientoInventario{movs[3], movs[1], movs[0], movs[2]}

	a := ledger.CalcularCostos(movs)
	b := ledger.CalcularCostos(permutado)

	require.Len(t, b, len(a))
	for proyectoID, ca := range a {
		cb := b[proyectoID]
		require.NotNil(t, cb)
		assert.True(t, ca.CostoBruto.Equal(cb.CostoBruto))
		assert.True(t, ca.CostoConsumido.Equal(cb.CostoConsumido))
		assert.True(t, ca.CostoMerma.Equal(cb.CostoMerma))
	}
}

// Los AJUSTE corrigen inventario, no imputan costo a ningún proyecto.
func TestCalcularCostos_IgnoraAjustes(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		movProyecto("m1", entity.MovimientoAjuste, 50, "", "", 2.00, 0),
	}
	costos := ledger.CalcularCostos(movs)
	assert.Empty(t, costos)
}

func TestTotalCostos_ColapsaProyectos(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		movProyecto("m1", entity.MovimientoRetiro, 10, "", "py-1", 2.00, 0),
		movProyecto("m2", entity.MovimientoRetiro, 4, "", "py-2", 1.00, time.Hour),
		movProyecto("m3", entity.MovimientoDevolucion, 2, entity.CondicionNoReutilizable, "py-2", 1.00, 2*time.Hour),
	}

	bruto, consumido, merma := ledger.TotalCostos(ledger.CalcularCostos(movs))

	assert.True(t, bruto.Equal(decimal.NewFromFloat(24.00)))
	assert.True(t, consumido.Equal(decimal.NewFromFloat(24.00)))
	assert.True(t, merma.Equal(decimal.NewFromFloat(2.00)))
}
