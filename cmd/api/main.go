package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/franmdz/celupos/internal/application/analytics"
	"github.com/franmdz/celupos/internal/application/auth"
	"github.com/franmdz/celupos/internal/application/usecase"
	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/infrastructure/excel"
	infrapdf "github.com/franmdz/celupos/internal/infrastructure/pdf"
	"github.com/franmdz/celupos/internal/infrastructure/postgres"
	httpRouter "github.com/franmdz/celupos/internal/interfaces/http"
	"github.com/franmdz/celupos/pkg/config"
	"github.com/franmdz/celupos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    "info",
		Servicio: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	carritoRepo := postgres.NewCarritoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	egresoRepo := postgres.NewEgresoRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productoUC := usecase.NewProductoUseCase(productoRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	egresoUC := usecase.NewEgresoUseCase(egresoRepo)
	tiendaUC := usecase.NewTiendaUseCase(productoRepo, categoriaRepo)
	carritoUC := ventas.NewCarritoUseCase(carritoRepo, productoRepo)
	registrarUC := ventas.NewRegistrarVentaUseCase(txRunner)
	reciboPDF := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)
	transUC := ventas.NewTransaccionesUseCase(ventaRepo, reciboPDF)
	reporteUC := analytics.NewReporteUseCase(reporteRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 << 20, // sube fotos de producto
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductoUC:  productoUC,
		CategoriaUC: categoriaUC,
		EgresoUC:    egresoUC,
		TiendaUC:    tiendaUC,
		CarritoUC:   carritoUC,
		RegistrarUC: registrarUC,
		TransUC:     transUC,
		ReporteUC:   reporteUC,
		Exporter:    excel.NewExporter(),
		Tienda:      cfg.Tienda,
		JWTSecret:   cfg.JWT.Secret,
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
