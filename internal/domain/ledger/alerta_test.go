package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/ledger"
)

func TestEvaluarMinimo(t *testing.T) {
	sede := &entity.Sede{ID: "sede-1", Nombre: "Norte", Tipo: entity.SedeSecundaria}

	tests := []struct {
		nombre       string
		minimo       int64
		disponible   int64
		quiereAlerta bool
		deficit      int64
	}{
		{"por debajo del mínimo", 10, 4, true, 6},
		{"exactamente en el mínimo", 10, 10, false, 0},
		{"por encima del mínimo", 10, 25, false, 0},
		{"sin mínimo configurado", 0, -5, false, 0},
		{"disponible negativo", 10, -2, true, 12},
	}

	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			producto := &entity.Producto{ID: "prod-1", StockMinimo: tc.minimo}
			alerta := ledger.EvaluarMinimo(sede, producto, ledger.Saldo{Disponible: tc.disponible})

			if !tc.quiereAlerta {
				assert.Nil(t, alerta)
				return
			}
			require.NotNil(t, alerta)
			assert.Equal(t, "sede-1", alerta.SedeID)
			assert.Equal(t, "prod-1", alerta.ProductoID)
			assert.Equal(t, tc.disponible, alerta.Disponible)
			assert.Equal(t, tc.minimo, alerta.Minimo)
			assert.Equal(t, tc.deficit, alerta.Deficit)
		})
	}
}
