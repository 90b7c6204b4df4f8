package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// LiquidarRequest cuerpo opcional al disparar una liquidación.
type LiquidarRequest struct {
	Observaciones string `json:"observaciones,omitempty"`
}

// DetalleLiquidacionDTO línea por producto de una liquidación.
type DetalleLiquidacionDTO struct {
	ProductoID       string `json:"producto_id"`
	StockInicial     int64  `json:"stock_inicial"`
	StockFinal       int64  `json:"stock_final"`
	CantidadRetirada int64  `json:"cantidad_retirada"`
	CantidadDevuelta int64  `json:"cantidad_devuelta"`
	CantidadMerma    int64  `json:"cantidad_merma"`
	CantidadUsada    int64  `json:"cantidad_usada"`
}

// DiscrepanciaDTO diferencia detectada por la verificación de consistencia.
type DiscrepanciaDTO struct {
	ProductoID string `json:"producto_id"`
	Esperado   int64  `json:"esperado"`
	Real       int64  `json:"real"`
	Delta      int64  `json:"delta"`
}

// LiquidacionResponse vista de lectura de una liquidación.
type LiquidacionResponse struct {
	ID             string                  `json:"id"`
	SedeID         string                  `json:"sede_id"`
	Semana         int                     `json:"semana"`
	Anio           int                     `json:"anio"`
	Desde          time.Time               `json:"desde"`
	Hasta          time.Time               `json:"hasta"`
	Estado         string                  `json:"estado"`
	CostoBruto     decimal.Decimal         `json:"costo_bruto"`
	CostoConsumido decimal.Decimal         `json:"costo_consumido"`
	CostoMerma     decimal.Decimal         `json:"costo_merma"`
	Detalle        []DetalleLiquidacionDTO `json:"detalle"`
	Discrepancias  []DiscrepanciaDTO       `json:"discrepancias,omitempty"`
	LiquidadoPor   string                  `json:"liquidado_por"`
	Observaciones  string                  `json:"observaciones,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// CostoProyectoDTO costos agregados de un centro de costo en el periodo.
type CostoProyectoDTO struct {
	ProyectoID     string          `json:"proyecto_id"`
	CostoBruto     decimal.Decimal `json:"costo_bruto"`
	CostoConsumido decimal.Decimal `json:"costo_consumido"`
	CostoMerma     decimal.Decimal `json:"costo_merma"`
}

// EstadoSedeDTO estado de liquidación de una sede para la semana objetivo.
type EstadoSedeDTO struct {
	SedeID    string `json:"sede_id"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	Liquidada bool   `json:"liquidada"`
	Estado    string `json:"estado,omitempty"`
}

// EstadoVentanaResponse estado de la ventana temporal y de las sedes para la
// semana objetivo (datos del dashboard de liquidación).
type EstadoVentanaResponse struct {
	Permitido bool            `json:"permitido"`
	Mensaje   string          `json:"mensaje"`
	Semana    int             `json:"semana"`
	Anio      int             `json:"anio"`
	Desde     time.Time       `json:"desde"`
	Hasta     time.Time       `json:"hasta"`
	Sedes     []EstadoSedeDTO `json:"sedes"`
}

// ResumenLiquidacionesDTO agregado del historial filtrado.
type ResumenLiquidacionesDTO struct {
	Total            int             `json:"total"`
	ConDiscrepancias int             `json:"con_discrepancias"`
	CostoBruto       decimal.Decimal `json:"costo_bruto"`
	CostoConsumido   decimal.Decimal `json:"costo_consumido"`
	CostoMerma       decimal.Decimal `json:"costo_merma"`
}

// ToLiquidacionResponse mapea la entidad al read model.
func ToLiquidacionResponse(l *entity.Liquidacion) *LiquidacionResponse {
	if l == nil {
		return nil
	}
	resp := &LiquidacionResponse{
		ID:             l.ID,
		SedeID:         l.SedeID,
		Semana:         l.Semana,
		Anio:           l.Anio,
		Desde:          l.Desde,
		Hasta:          l.Hasta,
		Estado:         l.Estado,
		CostoBruto:     l.CostoBruto,
		CostoConsumido: l.CostoConsumido,
		CostoMerma:     l.CostoMerma,
		LiquidadoPor:   l.LiquidadoPor,
		Observaciones:  l.Observaciones,
		CreatedAt:      l.CreatedAt,
	}
	for _, d := range l.Detalle {
		resp.Detalle = append(resp.Detalle, DetalleLiquidacionDTO{
			ProductoID:       d.ProductoID,
			StockInicial:     d.StockInicial,
			StockFinal:       d.StockFinal,
			CantidadRetirada: d.CantidadRetirada,
			CantidadDevuelta: d.CantidadDevuelta,
			CantidadMerma:    d.CantidadMerma,
			CantidadUsada:    d.CantidadUsada,
		})
	}
	for _, d := range l.Discrepancias {
		resp.Discrepancias = append(resp.Discrepancias, DiscrepanciaDTO{
			ProductoID: d.ProductoID,
			Esperado:   d.Esperado,
			Real:       d.Real,
			Delta:      d.Delta,
		})
	}
	return resp
}
