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

	"github.com/invorya/inventario-core/internal/application/auth"
	"github.com/invorya/inventario-core/internal/application/report"
	"github.com/invorya/inventario-core/internal/application/stock"
	"github.com/invorya/inventario-core/internal/application/usecase"
	"github.com/invorya/inventario-core/internal/infrastructure/postgres"
	httpRouter "github.com/invorya/inventario-core/internal/interfaces/http"
	"github.com/invorya/inventario-core/pkg/config"
	"github.com/invorya/inventario-core/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	managerRepo := postgres.NewManagerRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	managerUC := usecase.NewManagerUseCase(managerRepo, staffRepo, productRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo, managerRepo, productRepo, logRepo)
	productUC := usecase.NewProductUseCase(productRepo, managerRepo, logRepo)
	stockUC := stock.NewUpdateStockUseCase(txRunner, productRepo, staffRepo)
	logUC := usecase.NewLogUseCase(logRepo)
	reportUC := report.NewReportUseCase(logRepo, productRepo, managerRepo, staffRepo)

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
		Title:    "Inventario Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ManagerUC: managerUC,
		StaffUC:   staffUC,
		ProductUC: productUC,
		StockUC:   stockUC,
		LogUC:     logUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
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
