package dto

import "time"

// RegistrarMovimientoRequest cuerpo para anexar un movimiento al kardex.
// condicion es obligatoria cuando tipo = DEVOLUCION.
type RegistrarMovimientoRequest struct {
	SedeID     string `json:"sede_id"`
	ProductoID string `json:"producto_id"`
	ProyectoID string `json:"proyecto_id"`
	Tipo       string `json:"tipo"` // RETIRO | DEVOLUCION | AJUSTE
	Cantidad   int64  `json:"cantidad"`
	Condicion  string `json:"condicion,omitempty"` // REUTILIZABLE | NO_REUTILIZABLE
	Nota       string `json:"nota,omitempty"`
	// Fecha opcional del movimiento; vacía = ahora.
	Fecha *time.Time `json:"fecha,omitempty"`
}

// SaldoResponse respuesta de la consulta de saldo a una fecha.
type SaldoResponse struct {
	SedeID     string    `json:"sede_id"`
	ProductoID string    `json:"producto_id"`
	Hasta      time.Time `json:"hasta"`
	Disponible int64     `json:"disponible"`
	Merma      int64     `json:"merma"`
}

// AlertaResponse señal de reposición para un producto bajo mínimo.
type AlertaResponse struct {
	SedeID     string `json:"sede_id"`
	ProductoID string `json:"producto_id"`
	Disponible int64  `json:"disponible"`
	Minimo     int64  `json:"minimo"`
	Deficit    int64  `json:"deficit"`
}
