package ledger

import "github.com/jhoicas/Liquidacion-api/internal/domain/entity"

// EvaluarMinimo compara el saldo disponible contra el stock mínimo del
// producto y emite la señal de reposición si está por debajo. Pura y sin
// estado: sondearla repetidamente es seguro; no deduplica.
func EvaluarMinimo(sede *entity.Sede, producto *entity.Producto, saldo Saldo) *entity.AlertaStock {
	if producto.StockMinimo <= 0 || saldo.Disponible >= producto.StockMinimo {
		return nil
	}
	return &entity.AlertaStock{
		SedeID:     sede.ID,
		ProductoID: producto.ID,
		Disponible: saldo.Disponible,
		Minimo:     producto.StockMinimo,
		Deficit:    producto.StockMinimo - saldo.Disponible,
	}
}
