package liquidacion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Liquidacion-api/internal/domain/liquidacion"
)

// Semana de referencia: lunes 2025-03-10 a domingo 2025-03-16. El sábado 15,
// el domingo 16 y el lunes 17 habilitan la liquidación; todos apuntan a la
// semana lunes 3 a domingo 9 (los dos primeros) o a la del 10 al 16 (el lunes
// siguiente), nunca a la semana en curso.

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 12, 30, 0, 0, time.UTC)
}

func TestVentanaHoy_DiasPermitidos(t *testing.T) {
	tests := []struct {
		nombre    string
		hoy       time.Time
		permitido bool
	}{
		{"lunes", fecha(2025, 3, 10), true},
		{"martes", fecha(2025, 3, 11), false},
		{"miércoles", fecha(2025, 3, 12), false},
		{"jueves", fecha(2025, 3, 13), false},
		{"viernes", fecha(2025, 3, 14), false},
		{"sábado", fecha(2025, 3, 15), true},
		{"domingo", fecha(2025, 3, 16), true},
	}

	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			v := liquidacion.VentanaHoy(tc.hoy)
			assert.Equal(t, tc.permitido, v.Permitido)
			assert.NotEmpty(t, v.Mensaje)
		})
	}
}

// Sábado y domingo de una semana apuntan a la semana anterior completa.
func TestPeriodoObjetivo_SabadoYDomingoApuntanALaSemanaAnterior(t *testing.T) {
	for _, hoy := range []time.Time{fecha(2025, 3, 15), fecha(2025, 3, 16)} {
		p := liquidacion.PeriodoObjetivo(hoy)
		assert.Equal(t, 3, p.Desde.Day())
		assert.Equal(t, 9, p.Hasta.Day())
		assert.Equal(t, time.Monday, p.Desde.Weekday())
		assert.Equal(t, time.Sunday, p.Hasta.Weekday())
		assert.Equal(t, 6, int(p.Hasta.Sub(p.Desde).Hours()/24), "periodo de siete días")
	}
}

// El lunes apunta a la semana que acaba de terminar (la que cierra el domingo
// de ayer), no a la de hace dos semanas.
func TestPeriodoObjetivo_LunesApuntaALaSemanaQueTermino(t *testing.T) {
	p := liquidacion.PeriodoObjetivo(fecha(2025, 3, 17)) // lunes

	assert.Equal(t, 10, p.Desde.Day())
	assert.Equal(t, 16, p.Hasta.Day())
	assert.Equal(t, time.Monday, p.Desde.Weekday())
	assert.Equal(t, time.Sunday, p.Hasta.Weekday())
}

// La semana ISO se toma del lunes del periodo, importante en cambios de año.
func TestPeriodoObjetivo_SemanaISO(t *testing.T) {
	p := liquidacion.PeriodoObjetivo(fecha(2025, 3, 15))

	anio, semana := p.Desde.ISOWeek()
	assert.Equal(t, semana, p.Semana)
	assert.Equal(t, anio, p.Anio)
}

// Cambio de año: un sábado de inicios de enero apunta a la última semana del
// año anterior y la semana ISO acompaña al lunes del periodo.
func TestPeriodoObjetivo_CruceDeAnio(t *testing.T) {
	// Sábado 2026-01-03; la semana anterior es lunes 2025-12-22 a domingo 28.
	p := liquidacion.PeriodoObjetivo(fecha(2026, 1, 3))

	assert.Equal(t, 2025, p.Desde.Year())
	assert.Equal(t, time.December, p.Desde.Month())
	assert.Equal(t, 22, p.Desde.Day())
	assert.Equal(t, 28, p.Hasta.Day())
	assert.Equal(t, 2025, p.Anio)
}

func TestVentanaHoy_MensajeBloqueadoIndicaDiasRestantes(t *testing.T) {
	v := liquidacion.VentanaHoy(fecha(2025, 3, 12)) // miércoles

	assert.False(t, v.Permitido)
	assert.Contains(t, v.Mensaje, "3 días", "del miércoles al sábado faltan 3 días")
}
