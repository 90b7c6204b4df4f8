package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Liquidacion-api/internal/application/auth"
	"github.com/jhoicas/Liquidacion-api/internal/application/ledger"
	"github.com/jhoicas/Liquidacion-api/internal/application/liquidacion"
	"github.com/jhoicas/Liquidacion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Liquidacion-api/internal/interfaces/http"
	"github.com/jhoicas/Liquidacion-api/pkg/config"
	"github.com/jhoicas/Liquidacion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sedeRepo := postgres.NewSedeRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	liqRepo := postgres.NewLiquidacionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registrarMovUC := ledger.NewRegistrarMovimientoUseCase(movRepo, sedeRepo, productoRepo, proyectoRepo)
	consultaSaldoUC := ledger.NewConsultaSaldoUseCase(movRepo, sedeRepo, productoRepo)
	liquidarUC := liquidacion.NewLiquidarUseCase(txRunner, sedeRepo, liquidacion.Config{
		ToleranciaConsistencia: cfg.Liquidacion.Tolerancia,
		PermitirFueraDeVentana: cfg.Liquidacion.PermitirFueraDeVentana,
	})
	consultaLiqUC := liquidacion.NewConsultaLiquidacionUseCase(liqRepo, sedeRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, sedeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Liquidación API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		RegistrarMov:  registrarMovUC,
		ConsultaSaldo: consultaSaldoUC,
		LiquidarUC:    liquidarUC,
		ConsultaLiq:   consultaLiqUC,
		SedeRepo:      sedeRepo,
		ProductoRepo:  productoRepo,
		ProyectoRepo:  proyectoRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
