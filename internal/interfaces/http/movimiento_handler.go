package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Liquidacion-api/internal/application/dto"
	"github.com/jhoicas/Liquidacion-api/internal/application/ledger"
)

// MovimientoHandler maneja el kardex: registro de movimientos y consultas de
// saldo, alertas y costos.
type MovimientoHandler struct {
	registrar *ledger.RegistrarMovimientoUseCase
	consultas *ledger.ConsultaSaldoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(registrar *ledger.RegistrarMovimientoUseCase, consultas *ledger.ConsultaSaldoUseCase) *MovimientoHandler {
	return &MovimientoHandler{registrar: registrar, consultas: consultas}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  Anexa un RETIRO, DEVOLUCION o AJUSTE al kardex de la sede.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "sede_id, producto_id, tipo, cantidad; proyecto_id para RETIRO/DEVOLUCION; condicion para DEVOLUCION"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	actor, ok := GetAutoridad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.registrar.Registrar(c.Context(), actor.ActorID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": mov.ID, "message": "movimiento registrado"})
}

// Saldo godoc
// @Summary      Saldo de un producto en una sede a una fecha
// @Description  Reproduce el kardex hasta la fecha de corte. Sin parámetro hasta, usa ahora.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sede_id      query  string  true   "Sede (UUID)"
// @Param        producto_id  query  string  true   "Producto (UUID)"
// @Param        hasta        query  string  false  "Fecha de corte RFC3339"
// @Success      200  {object}  dto.SaldoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/saldo [get]
func (h *MovimientoHandler) Saldo(c *fiber.Ctx) error {
	sedeID := c.Query("sede_id")
	productoID := c.Query("producto_id")
	if sedeID == "" || productoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sede_id y producto_id son requeridos"})
	}
	hasta := time.Now()
	if raw := c.Query("hasta"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta debe ser RFC3339"})
		}
		hasta = t
	}
	saldo, err := h.consultas.SaldoALaFecha(c.Context(), sedeID, productoID, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saldo)
}

// Alertas godoc
// @Summary      Alertas de reposición de una sede
// @Description  Productos activos con disponible por debajo del stock mínimo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  true  "Sede (UUID)"
// @Success      200  {array}   dto.AlertaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alertas [get]
func (h *MovimientoHandler) Alertas(c *fiber.Ctx) error {
	sedeID := c.Query("sede_id")
	if sedeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sede_id es requerido"})
	}
	alertas, err := h.consultas.AlertasDeSede(c.Context(), sedeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(alertas), "alertas": alertas})
}

// Costos godoc
// @Summary      Costos por proyecto en un rango de fechas
// @Description  Costo bruto, consumido y merma por centro de costo, valuados al costo congelado de cada movimiento.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  true  "Sede (UUID)"
// @Param        desde    query  string  true  "Inicio RFC3339"
// @Param        hasta    query  string  true  "Fin RFC3339"
// @Success      200  {array}   dto.CostoProyectoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/costos [get]
func (h *MovimientoHandler) Costos(c *fiber.Ctx) error {
	sedeID := c.Query("sede_id")
	if sedeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sede_id es requerido"})
	}
	desde, err := time.Parse(time.RFC3339, c.Query("desde"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde debe ser RFC3339"})
	}
	hasta, err := time.Parse(time.RFC3339, c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta debe ser RFC3339"})
	}
	costos, err := h.consultas.CostosDelPeriodo(c.Context(), sedeID, desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(costos), "costos": costos})
}
