package liquidacion

import (
	"fmt"
	"sort"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// ResultadoVerificacion es la salida de la verificación de consistencia
// global que corre la liquidación del almacén central.
type ResultadoVerificacion struct {
	Estado         string // CONSISTENTE | INCONSISTENTE | REVISAR
	Discrepancias  []entity.Discrepancia
	SedesFaltantes []string
	Motivo         string
}

// Verificar cruza el saldo de cierre del central derivado de su kardex contra
// la suma de los cierres de todas las sedes secundarias más los movimientos
// directos del propio central, producto por producto.
//
//   - Todas las sedes cuadran exactamente (dentro de la tolerancia, cero por
//     defecto) → CONSISTENTE.
//   - Algún producto fuera de tolerancia → INCONSISTENTE, con el detalle
//     (producto, esperado, real, delta) de cada diferencia.
//   - Alguna sede secundaria sin liquidar el periodo → REVISAR.
//   - Una liquidación secundaria en estado inesperado (PENDIENTE) es un bug de
//     integridad: ErrInvariante, el caller aborta sin escribir registro.
//
// Es de solo lectura sobre los registros existentes; nunca muta las
// liquidaciones secundarias.
func Verificar(
	centralReal map[string]int64,
	centralDirecto map[string]int64,
	sedesSecundarias []string,
	cierres map[string]*entity.Liquidacion,
	tolerancia int64,
) (ResultadoVerificacion, error) {

	esperado := make(map[string]int64, len(centralDirecto))
	for productoID, saldo := range centralDirecto {
		esperado[productoID] += saldo
	}

	var faltantes []string
	for _, sedeID := range sedesSecundarias {
		liq, ok := cierres[sedeID]
		if !ok || liq == nil {
			faltantes = append(faltantes, sedeID)
			continue
		}
		if !liq.EsTerminal() {
			return ResultadoVerificacion{}, fmt.Errorf(
				"%w: la liquidación de la sede %s está en estado %q", domain.ErrInvariante, sedeID, liq.Estado)
		}
		for _, d := range liq.Detalle {
			esperado[d.ProductoID] += d.StockFinal
		}
	}

	if len(faltantes) > 0 {
		sort.Strings(faltantes)
		return ResultadoVerificacion{
			Estado:         entity.EstadoRevisar,
			SedesFaltantes: faltantes,
			Motivo:         fmt.Sprintf("liquidaciones de sedes incompletas: faltan %d sedes", len(faltantes)),
		}, nil
	}

	// Unión de productos vistos por cualquiera de los dos lados.
	productos := make(map[string]struct{}, len(esperado)+len(centralReal))
	for p := range esperado {
		productos[p] = struct{}{}
	}
	for p := range centralReal {
		productos[p] = struct{}{}
	}

	var discrepancias []entity.Discrepancia
	for productoID := range productos {
		esp := esperado[productoID]
		real := centralReal[productoID]
		delta := real - esp
		if delta > tolerancia || delta < -tolerancia {
			discrepancias = append(discrepancias, entity.Discrepancia{
				ProductoID: productoID,
				Esperado:   esp,
				Real:       real,
				Delta:      delta,
			})
		}
	}

	if len(discrepancias) > 0 {
		sort.Slice(discrepancias, func(i, j int) bool {
			return discrepancias[i].ProductoID < discrepancias[j].ProductoID
		})
		return ResultadoVerificacion{
			Estado:        entity.EstadoInconsistente,
			Discrepancias: discrepancias,
			Motivo:        fmt.Sprintf("%d productos con diferencias", len(discrepancias)),
		}, nil
	}

	return ResultadoVerificacion{Estado: entity.EstadoConsistente}, nil
}
