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

	"github.com/dulcehorno/panaderia-api/internal/application/allocation"
	"github.com/dulcehorno/panaderia-api/internal/application/auth"
	"github.com/dulcehorno/panaderia-api/internal/application/reports"
	"github.com/dulcehorno/panaderia-api/internal/application/sales"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
	infracharts "github.com/dulcehorno/panaderia-api/internal/infrastructure/chart"
	"github.com/dulcehorno/panaderia-api/internal/infrastructure/events"
	infrapdf "github.com/dulcehorno/panaderia-api/internal/infrastructure/pdf"
	"github.com/dulcehorno/panaderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/dulcehorno/panaderia-api/internal/interfaces/http"
	"github.com/dulcehorno/panaderia-api/pkg/config"
	"github.com/dulcehorno/panaderia-api/pkg/logger"
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
	recipeRepo := postgres.NewRecipeRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	planRepo := postgres.NewProductionPlanRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	subOrderRepo := postgres.NewSubOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publicador de cambios de stock: NATS si hay URL configurada, no-op si no.
	var publisher sales.StockChangedPublisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		defer natsPub.Close()
		publisher = natsPub
		log.Info().Str("url", cfg.NATS.URL).Msg("publicador NATS conectado")
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	chartRenderer := infracharts.NewGoChartRenderer()

	stockSeed := int64(cfg.POS.StockSeed)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	recipeUC := usecase.NewRecipeUseCase(recipeRepo)
	inventoryUC := usecase.NewInventoryUseCase(invRepo)
	productionUC := usecase.NewProductionUseCase(planRepo, recipeRepo)
	statisticsUC := usecase.NewStatisticsUseCase(invRepo, planRepo, chartRenderer)
	allocationUC := allocation.NewUseCase(planRepo, recipeRepo, pdfGenerator, log)
	reportsUC := reports.NewUseCase(recipeRepo, invRepo, planRepo, pdfGenerator)
	orderBuilder := sales.NewOrderBuilder(priceRepo, stockRepo, stockSeed)
	posUC := sales.NewPOSUseCase(recipeRepo, priceRepo, stockRepo, billRepo, stockSeed, log)
	settleUC := sales.NewSettleUseCase(orderBuilder, txRunner, publisher, stockSeed, log)
	subOrderUC := sales.NewSubOrderUseCase(subOrderRepo, priceRepo, recipeRepo, int64(cfg.POS.DefaultOrderAmount))

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
		Title:    "Panadería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RecipeUC:     recipeUC,
		InventoryUC:  inventoryUC,
		ProductionUC: productionUC,
		StatisticsUC: statisticsUC,
		AllocationUC: allocationUC,
		ReportsUC:    reportsUC,
		POSUC:        posUC,
		OrderBuilder: orderBuilder,
		SettleUC:     settleUC,
		SubOrderUC:   subOrderUC,
		JWTSecret:    cfg.JWT.Secret,
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
