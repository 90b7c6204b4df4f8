package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var base = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) // lunes

func mov(id, tipo string, cantidad int64, condicion string, offset time.Duration) *entity.MovimientoInventario {
	return &entity.MovimientoInventario{
		ID:            id,
		SedeID:        "sede-1",
		ProductoID:    "prod-1",
		Tipo:          tipo,
		Cantidad:      cantidad,
		Condicion:     condicion,
		CostoUnitario: decimal.NewFromInt(2),
		Fecha:         base.Add(offset),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reproducir: semántica de cada tipo de movimiento
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: ajuste inicial +10, retiro de 10, devolución reutilizable
// de 6 y devolución no reutilizable de 4. El disponible queda en 6 y la merma
// acumulada en 4; la merma nunca vuelve al disponible.
func TestReproducir_EscenarioCompleto(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		mov("m1", entity.MovimientoAjuste, 10, "", 0),
		mov("m2", entity.MovimientoRetiro, 10, "", time.Hour),
		mov("m3", entity.MovimientoDevolucion, 6, entity.CondicionReutilizable, 2*time.Hour),
		mov("m4", entity.MovimientoDevolucion, 4, entity.CondicionNoReutilizable, 3*time.Hour),
	}

	s := ledger.Reproducir(movs)

	assert.Equal(t, int64(6), s.Disponible, "la devolución reutilizable vuelve al disponible")
	assert.Equal(t, int64(4), s.Merma, "la devolución no reutilizable acumula merma")
}

// El ajuste acepta cantidad con signo: un ajuste negativo corrige hacia abajo.
func TestReproducir_AjusteNegativo(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		mov("m1", entity.MovimientoAjuste, 10, "", 0),
		mov("m2", entity.MovimientoAjuste, -3, "", time.Hour),
	}

	s := ledger.Reproducir(movs)
	assert.Equal(t, int64(7), s.Disponible)
	assert.Zero(t, s.Merma)
}

// El resultado no depende del orden en que llegan los movimientos: Reproducir
// ordena por fecha antes de plegar.
func TestReproducir_DeterministaAnteDesorden(t *testing.T) {
	ordenados := []*entity.MovimientoInventario{
		mov("m1", entity.MovimientoAjuste, 10, "", 0),
		mov("m2", entity.MovimientoRetiro, 4, "", time.Hour),
		mov("m3", entity.MovimientoDevolucion, 2, entity.CondicionReutilizable, 2*time.Hour),
	}
	desordenados := []*entity.MovimientoInventario{ordenados[2], ordenados[0], ordenados[1]}

	assert.Equal(t, ledger.Reproducir(ordenados), ledger.Reproducir(desordenados))
}

// Movimientos con el mismo instante se desempatan por ID, siempre en el mismo
// orden.
func TestOrdenarCronologico_DesempatePorID(t *testing.T) {
	a := mov("aaa", entity.MovimientoAjuste, 5, "", 0)
	b := mov("bbb", entity.MovimientoRetiro, 2, "", 0) // misma fecha que a

	movs := []*entity.MovimientoInventario{b, a}
	ledger.OrdenarCronologico(movs)

	assert.Equal(t, "aaa", movs[0].ID, "a igualdad de fecha gana el ID menor")
	assert.Equal(t, "bbb", movs[1].ID)
}

// SaldoHasta incluye los movimientos con fecha exactamente igual al corte y
// excluye los posteriores.
func TestSaldoHasta_CorteInclusivo(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		mov("m1", entity.MovimientoAjuste, 10, "", 0),
		mov("m2", entity.MovimientoRetiro, 3, "", time.Hour),
		mov("m3", entity.MovimientoRetiro, 5, "", 2*time.Hour),
	}

	s := ledger.SaldoHasta(movs, base.Add(time.Hour))

	assert.Equal(t, int64(7), s.Disponible, "el movimiento en el corte exacto cuenta; el posterior no")
}

func TestReproducir_SinMovimientos(t *testing.T) {
	s := ledger.Reproducir(nil)
	assert.Zero(t, s.Disponible)
	assert.Zero(t, s.Merma)
}

// ──────────────────────────────────────────────────────────────────────────────
// SaldosPorProducto y ResumirPorProducto
// ──────────────────────────────────────────────────────────────────────────────

func TestSaldosPorProducto_AgrupaPorProducto(t *testing.T) {
	m1 := mov("m1", entity.MovimientoAjuste, 10, "", 0)
	m2 := mov("m2", entity.MovimientoAjuste, 4, "", 0)
	m2.ProductoID = "prod-2"
	m3 := mov("m3", entity.MovimientoRetiro, 1, "", time.Hour)
	m3.ProductoID = "prod-2"

	saldos := ledger.SaldosPorProducto([]*entity.MovimientoInventario{m1, m2, m3})

	assert.Equal(t, int64(10), saldos["prod-1"].Disponible)
	assert.Equal(t, int64(3), saldos["prod-2"].Disponible)
}

func TestResumirPorProducto_CantidadUsada(t *testing.T) {
	movs := []*entity.MovimientoInventario{
		mov("m1", entity.MovimientoRetiro, 10, "", 0),
		mov("m2", entity.MovimientoDevolucion, 6, entity.CondicionReutilizable, time.Hour),
		mov("m3", entity.MovimientoDevolucion, 1, entity.CondicionNoReutilizable, 2*time.Hour),
		mov("m4", entity.MovimientoAjuste, -2, "", 3*time.Hour),
	}

	resumen := ledger.ResumirPorProducto(movs)
	r := resumen["prod-1"]

	assert.Equal(t, int64(10), r.Retirado)
	assert.Equal(t, int64(6), r.Devuelto)
	assert.Equal(t, int64(1), r.Merma)
	assert.Equal(t, int64(-2), r.AjusteNeto)
	assert.Equal(t, int64(3), r.Usado(), "usado = retirado - devuelto - merma")
}
