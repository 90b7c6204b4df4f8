package liquidacion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/liquidacion"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func cierreSede(estado string, finales map[string]int64) *entity.Liquidacion {
	liq := &entity.Liquidacion{Estado: estado}
	for productoID, final := range finales {
		liq.Detalle = append(liq.Detalle, entity.LiquidacionDetalle{
			ProductoID: productoID,
			StockFinal: final,
		})
	}
	return liq
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificar
// ──────────────────────────────────────────────────────────────────────────────

// Todas las sedes liquidadas y el saldo real del central coincide con la suma
// de los cierres secundarios más sus movimientos directos: CONSISTENTE.
func TestVerificar_TodoCuadra_Consistente(t *testing.T) {
	real := map[string]int64{"prod-1": 30, "prod-2": 12}
	directo := map[string]int64{"prod-1": 10, "prod-2": 2}
	cierres := map[string]*entity.Liquidacion{
		"sede-norte": cierreSede(entity.EstadoLiquidado, map[string]int64{"prod-1": 12, "prod-2": 4}),
		"sede-sur":   cierreSede(entity.EstadoLiquidado, map[string]int64{"prod-1": 8, "prod-2": 6}),
	}

	res, err := liquidacion.Verificar(real, directo, []string{"sede-norte", "sede-sur"}, cierres, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.EstadoConsistente, res.Estado)
	assert.Empty(t, res.Discrepancias)
}

// Una diferencia fuera de tolerancia produce INCONSISTENTE con el detalle
// (producto, esperado, real, delta) de cada discrepancia.
func TestVerificar_Diferencias_Inconsistente(t *testing.T) {
	real := map[string]int64{"prod-1": 25, "prod-2": 10}
	directo := map[string]int64{"prod-1": 10, "prod-2": 10}
	cierres := map[string]*entity.Liquidacion{
		"sede-norte": cierreSede(entity.EstadoLiquidado, map[string]int64{"prod-1": 12}),
	}

	res, err := liquidacion.Verificar(real, directo, []string{"sede-norte"}, cierres, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.EstadoInconsistente, res.Estado)
	require.Len(t, res.Discrepancias, 1)
	d := res.Discrepancias[0]
	assert.Equal(t, "prod-1", d.ProductoID)
	assert.Equal(t, int64(22), d.Esperado)
	assert.Equal(t, int64(25), d.Real)
	assert.Equal(t, int64(3), d.Delta)
}

// La tolerancia absorbe diferencias pequeñas en ambos sentidos.
func TestVerificar_DentroDeTolerancia_Consistente(t *testing.T) {
	real := map[string]int64{"prod-1": 11, "prod-2": 9}
	directo := map[string]int64{"prod-1": 10, "prod-2": 10}

	res, err := liquidacion.Verificar(real, directo, nil, nil, 1)

	require.NoError(t, err)
	assert.Equal(t, entity.EstadoConsistente, res.Estado)
}

// Discrepancias ordenadas por producto para una salida estable.
func TestVerificar_DiscrepanciasOrdenadas(t *testing.T) {
	real := map[string]int64{"prod-c": 5, "prod-a": 5, "prod-b": 5}

	res, err := liquidacion.Verificar(real, nil, nil, nil, 0)

	require.NoError(t, err)
	require.Len(t, res.Discrepancias, 3)
	assert.Equal(t, "prod-a", res.Discrepancias[0].ProductoID)
	assert.Equal(t, "prod-b", res.Discrepancias[1].ProductoID)
	assert.Equal(t, "prod-c", res.Discrepancias[2].ProductoID)
}

// Un producto que solo aparece en el lado esperado también cuenta: la unión
// de productos cubre ambos lados del cruce.
func TestVerificar_ProductoSoloEnEsperado(t *testing.T) {
	directo := map[string]int64{"prod-1": 7}

	res, err := liquidacion.Verificar(map[string]int64{}, directo, nil, nil, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.EstadoInconsistente, res.Estado)
	require.Len(t, res.Discrepancias, 1)
	assert.Equal(t, int64(-7), res.Discrepancias[0].Delta)
}

// Falta una sede secundaria por liquidar: REVISAR, sin evaluar diferencias.
func TestVerificar_SedeSinLiquidar_Revisar(t *testing.T) {
	cierres := map[string]*entity.Liquidacion{
		"sede-norte": cierreSede(entity.EstadoLiquidado, map[string]int64{"prod-1": 12}),
	}

	res, err := liquidacion.Verificar(nil, nil, []string{"sede-norte", "sede-sur", "sede-este"}, cierres, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.EstadoRevisar, res.Estado)
	assert.Equal(t, []string{"sede-este", "sede-sur"}, res.SedesFaltantes)
	assert.Contains(t, res.Motivo, "2 sedes")
}

// Una liquidación secundaria en estado PENDIENTE es corrupción de datos:
// ErrInvariante y ningún resultado.
func TestVerificar_CierrePendiente_Invariante(t *testing.T) {
	cierres := map[string]*entity.Liquidacion{
		"sede-norte": cierreSede(entity.EstadoPendiente, nil),
	}

	_, err := liquidacion.Verificar(nil, nil, []string{"sede-norte"}, cierres, 0)

	assert.ErrorIs(t, err, domain.ErrInvariante)
}
