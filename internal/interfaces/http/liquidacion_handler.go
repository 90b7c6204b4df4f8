package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Liquidacion-api/internal/application/dto"
	"github.com/jhoicas/Liquidacion-api/internal/application/liquidacion"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// LiquidacionHandler maneja el cierre semanal y sus consultas.
type LiquidacionHandler struct {
	liquidar  *liquidacion.LiquidarUseCase
	consultas *liquidacion.ConsultaLiquidacionUseCase
}

// NewLiquidacionHandler construye el handler.
func NewLiquidacionHandler(liquidar *liquidacion.LiquidarUseCase, consultas *liquidacion.ConsultaLiquidacionUseCase) *LiquidacionHandler {
	return &LiquidacionHandler{liquidar: liquidar, consultas: consultas}
}

// LiquidarSede godoc
// @Summary      Liquidar una sede secundaria
// @Description  Cierra el kardex de la sede para la semana anterior (lunes a domingo) y congela el registro. Solo sábado, domingo o lunes.
// @Tags         liquidaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Sede (UUID)"
// @Param        body  body  dto.LiquidarRequest  false  "observaciones"
// @Success      201   {object}  dto.LiquidacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/liquidaciones/sedes/{id} [post]
func (h *LiquidacionHandler) LiquidarSede(c *fiber.Ctx) error {
	actor, ok := GetAutoridad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	sedeID := c.Params("id")
	var in dto.LiquidarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	liq, err := h.liquidar.LiquidarSede(c.Context(), actor, sedeID, time.Now(), in.Observaciones)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLiquidacionResponse(liq))
}

// LiquidarCentral godoc
// @Summary      Liquidar el almacén central
// @Description  Cierra el kardex del central y corre la verificación de consistencia contra los cierres de las sedes secundarias.
// @Tags         liquidaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LiquidarRequest  false  "observaciones"
// @Success      201   {object}  dto.LiquidacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/liquidaciones/central [post]
func (h *LiquidacionHandler) LiquidarCentral(c *fiber.Ctx) error {
	actor, ok := GetAutoridad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.LiquidarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	liq, err := h.liquidar.LiquidarCentral(c.Context(), actor, time.Now(), in.Observaciones)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLiquidacionResponse(liq))
}

// Obtener godoc
// @Summary      Liquidación de una sede para un periodo
// @Tags         liquidaciones
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "Sede (UUID)"
// @Param        semana  query  int     true  "Semana ISO"
// @Param        anio    query  int     true  "Año ISO"
// @Success      200  {object}  dto.LiquidacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/liquidaciones/sedes/{id} [get]
func (h *LiquidacionHandler) Obtener(c *fiber.Ctx) error {
	sedeID := c.Params("id")
	semana, err1 := strconv.Atoi(c.Query("semana"))
	anio, err2 := strconv.Atoi(c.Query("anio"))
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "semana y anio son requeridos"})
	}
	liq, err := h.consultas.Obtener(c.Context(), sedeID, semana, anio)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(liq)
}

// Historial godoc
// @Summary      Historial de liquidaciones
// @Description  Lista con filtros opcionales por sede, semana y año, más el resumen agregado (totales y cuántas con discrepancias).
// @Tags         liquidaciones
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Filtrar por sede (UUID)"
// @Param        semana   query  int     false  "Semana ISO"
// @Param        anio     query  int     false  "Año ISO"
// @Param        limit    query  int     false  "Límite de página"
// @Param        offset   query  int     false  "Desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/liquidaciones [get]
func (h *LiquidacionHandler) Historial(c *fiber.Ctx) error {
	filtro := repository.FiltroLiquidaciones{
		SedeID: c.Query("sede_id"),
		Semana: c.QueryInt("semana"),
		Anio:   c.QueryInt("anio"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	list, resumen, err := h.consultas.Historial(c.Context(), filtro)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"resumen": resumen, "liquidaciones": list})
}

// Estado godoc
// @Summary      Estado de la ventana de liquidación
// @Description  Indica si hoy se puede liquidar, la semana objetivo y qué sedes ya cerraron.
// @Tags         liquidaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadoVentanaResponse
// @Router       /api/liquidaciones/estado [get]
func (h *LiquidacionHandler) Estado(c *fiber.Ctx) error {
	resp, err := h.consultas.EstadoVentana(c.Context(), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
