package ledger

import "github.com/jhoicas/Liquidacion-api/internal/domain/entity"

// ResumenProducto acumula las cantidades del periodo para un producto:
// lo retirado, lo devuelto reutilizable, la merma y el ajuste neto.
type ResumenProducto struct {
	ProductoID string
	Retirado   int64
	Devuelto   int64
	Merma      int64
	AjusteNeto int64
}

// Usado es la cantidad consumida: retirado menos devuelto menos merma.
func (r *ResumenProducto) Usado() int64 {
	return r.Retirado - r.Devuelto - r.Merma
}

// ResumirPorProducto agrega los movimientos de un periodo por producto.
// Sumas puras: invariantes ante el orden de los eventos.
func ResumirPorProducto(movs []*entity.MovimientoInventario) map[string]*ResumenProducto {
	porProducto := make(map[string]*ResumenProducto)
	for _, m := range movs {
		r, ok := porProducto[m.ProductoID]
		if !ok {
			r = &ResumenProducto{ProductoID: m.ProductoID}
			porProducto[m.ProductoID] = r
		}
		switch m.Tipo {
		case entity.MovimientoRetiro:
			r.Retirado += m.Cantidad
		case entity.MovimientoDevolucion:
			if m.EsMerma() {
				r.Merma += m.Cantidad
			} else {
				r.Devuelto += m.Cantidad
			}
		case entity.MovimientoAjuste:
			r.AjusteNeto += m.Cantidad
		}
	}
	return porProducto
}

// SaldosPorProducto reproduce los movimientos agrupando por producto.
func SaldosPorProducto(movs []*entity.MovimientoInventario) map[string]Saldo {
	grupos := make(map[string][]*entity.MovimientoInventario)
	for _, m := range movs {
		grupos[m.ProductoID] = append(grupos[m.ProductoID], m)
	}
	saldos := make(map[string]Saldo, len(grupos))
	for productoID, g := range grupos {
		saldos[productoID] = Reproducir(g)
	}
	return saldos
}
