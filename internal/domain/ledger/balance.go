package ledger

import (
	"sort"
	"time"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// Saldo es el estado derivado de una pareja (sede, producto): disponible y
// merma acumulada. Siempre re-derivable del historial de movimientos; el
// kardex es la única fuente de verdad.
type Saldo struct {
	Disponible int64
	Merma      int64
}

// Aplicar incorpora un movimiento al saldo. RETIRO resta del disponible; una
// DEVOLUCION REUTILIZABLE vuelve al disponible y una NO_REUTILIZABLE acumula
// merma sin tocar el disponible; AJUSTE suma su cantidad con signo.
func (s Saldo) Aplicar(m *entity.MovimientoInventario) Saldo {
	switch m.Tipo {
	case entity.MovimientoRetiro:
		s.Disponible -= m.Cantidad
	case entity.MovimientoDevolucion:
		if m.EsMerma() {
			s.Merma += m.Cantidad
		} else {
			s.Disponible += m.Cantidad
		}
	case entity.MovimientoAjuste:
		s.Disponible += m.Cantidad
	}
	return s
}

// Reproducir pliega una secuencia de movimientos sobre el saldo cero.
// Es determinista: ordena por fecha ascendente y desempata por ID de
// movimiento, de modo que eventos con el mismo instante siempre se aplican en
// el mismo orden.
func Reproducir(movs []*entity.MovimientoInventario) Saldo {
	ordenados := make([]*entity.MovimientoInventario, len(movs))
	copy(ordenados, movs)
	OrdenarCronologico(ordenados)

	var s Saldo
	for _, m := range ordenados {
		s = s.Aplicar(m)
	}
	return s
}

// SaldoHasta reproduce solo los movimientos con fecha <= corte.
func SaldoHasta(movs []*entity.MovimientoInventario, corte time.Time) Saldo {
	filtrados := make([]*entity.MovimientoInventario, 0, len(movs))
	for _, m := range movs {
		if !m.Fecha.After(corte) {
			filtrados = append(filtrados, m)
		}
	}
	return Reproducir(filtrados)
}

// OrdenarCronologico ordena in place por fecha ascendente, desempatando por ID.
func OrdenarCronologico(movs []*entity.MovimientoInventario) {
	sort.SliceStable(movs, func(i, j int) bool {
		if movs[i].Fecha.Equal(movs[j].Fecha) {
			return movs[i].ID < movs[j].ID
		}
		return movs[i].Fecha.Before(movs[j].Fecha)
	})
}
