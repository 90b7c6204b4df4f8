package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Liquidacion-api/internal/application/auth"
	"github.com/jhoicas/Liquidacion-api/internal/application/ledger"
	"github.com/jhoicas/Liquidacion-api/internal/application/liquidacion"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	RegistrarMov  *ledger.RegistrarMovimientoUseCase
	ConsultaSaldo *ledger.ConsultaSaldoUseCase
	LiquidarUC    *liquidacion.LiquidarUseCase
	ConsultaLiq   *liquidacion.ConsultaLiquidacionUseCase
	SedeRepo      repository.SedeRepository
	ProductoRepo  repository.ProductoRepository
	ProyectoRepo  repository.ProyectoRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Kardex (protegido)
	movHandler := NewMovimientoHandler(deps.RegistrarMov, deps.ConsultaSaldo)
	protected.Post("/movimientos", movHandler.Registrar)
	protected.Get("/stock/saldo", movHandler.Saldo)
	protected.Get("/stock/costos", movHandler.Costos)
	protected.Get("/alertas", movHandler.Alertas)

	// Liquidaciones (protegido; las puertas de acceso y de ventana se
	// re-evalúan dentro del caso de uso, no solo en el transporte)
	liqHandler := NewLiquidacionHandler(deps.LiquidarUC, deps.ConsultaLiq)
	protected.Get("/liquidaciones", liqHandler.Historial)
	protected.Get("/liquidaciones/estado", liqHandler.Estado)
	protected.Post("/liquidaciones/central", liqHandler.LiquidarCentral)
	protected.Post("/liquidaciones/sedes/:id", liqHandler.LiquidarSede)
	protected.Get("/liquidaciones/sedes/:id", liqHandler.Obtener)

	// Catálogo (protegido, solo lectura)
	catHandler := NewCatalogoHandler(deps.SedeRepo, deps.ProductoRepo, deps.ProyectoRepo)
	protected.Get("/sedes", catHandler.ListSedes)
	protected.Get("/productos", catHandler.ListProductos)
	protected.Get("/proyectos", catHandler.ListProyectos)
}
