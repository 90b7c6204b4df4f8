package liquidacion

import (
	"fmt"
	"time"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

var nombresDia = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// Ventana es el resultado del Temporal Gate para una fecha dada.
type Ventana struct {
	Permitido bool
	Periodo   entity.Periodo // semana objetivo, solo válido si Permitido
	Mensaje   string
}

// VentanaHoy evalúa si la fecha dada habilita liquidar. Días permitidos:
// sábado, domingo y lunes. La fecha se pasa explícita (nunca reloj ambiente)
// para que la puerta sea determinista y testeable.
//
// El periodo objetivo es siempre la semana completa lunes–domingo
// inmediatamente anterior, sin importar cuál de los tres días dispara la
// verificación: liquidar el sábado, el domingo o el lunes de esta semana
// apunta a la semana pasada, nunca a la semana en curso.
func VentanaHoy(hoy time.Time) Ventana {
	dia := hoy.Weekday()
	periodo := PeriodoObjetivo(hoy)

	switch dia {
	case time.Saturday, time.Sunday, time.Monday:
		return Ventana{
			Permitido: true,
			Periodo:   periodo,
			Mensaje:   fmt.Sprintf("hoy es %s, puede realizar la liquidación de la %s", nombresDia[dia], periodo),
		}
	}

	// Martes a viernes: bloqueado; indicar cuántos días faltan para el sábado.
	diasParaSabado := int((time.Saturday - dia + 7) % 7)
	return Ventana{
		Mensaje: fmt.Sprintf(
			"hoy es %s; la liquidación está habilitada de sábado a lunes (faltan %d días para el sábado)",
			nombresDia[dia], diasParaSabado),
	}
}

// PeriodoObjetivo calcula la semana lunes–domingo inmediatamente anterior a la
// fecha dada: la que termina el domingo previo al lunes más reciente.
func PeriodoObjetivo(hoy time.Time) entity.Periodo {
	fecha := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())

	// Lunes de la semana en curso (weekday lunes=0 ... domingo=6).
	desdeLunes := (int(fecha.Weekday()) + 6) % 7
	lunesActual := fecha.AddDate(0, 0, -desdeLunes)

	desde := lunesActual.AddDate(0, 0, -7)
	hasta := lunesActual.AddDate(0, 0, -1)
	anio, semana := desde.ISOWeek()

	return entity.Periodo{Semana: semana, Anio: anio, Desde: desde, Hasta: hasta}
}
