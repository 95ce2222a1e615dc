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
	"github.com/tu-usuario/gmao-pro/internal/application/auth"
	"github.com/tu-usuario/gmao-pro/internal/application/dashboard"
	"github.com/tu-usuario/gmao-pro/internal/application/preventive"
	"github.com/tu-usuario/gmao-pro/internal/application/procurement"
	"github.com/tu-usuario/gmao-pro/internal/application/usecase"
	"github.com/tu-usuario/gmao-pro/internal/application/workorder"
	"github.com/tu-usuario/gmao-pro/internal/domain/maintenance"
	infrapdf "github.com/tu-usuario/gmao-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/gmao-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gmao-pro/internal/interfaces/http"
	"github.com/tu-usuario/gmao-pro/pkg/config"
	"github.com/tu-usuario/gmao-pro/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sectorRepo := postgres.NewSectorRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	toolRepo := postgres.NewToolRepository(pool)
	categoryRepo := postgres.NewSparePartCategoryRepository(pool)
	partRepo := postgres.NewSparePartRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	planRepo := postgres.NewPreventivePlanRepository(pool)
	orderRepo := postgres.NewWorkOrderRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clock := maintenance.SystemClock{}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	sectorUC := usecase.NewSectorUseCase(sectorRepo, assetRepo)
	workerUC := usecase.NewWorkerUseCase(workerRepo, sectorRepo)
	assetUC := usecase.NewAssetUseCase(assetRepo, sectorRepo, planRepo)
	toolUC := usecase.NewToolUseCase(toolRepo, workerRepo, sectorRepo)
	sparePartUC := usecase.NewSparePartUseCase(categoryRepo, partRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, categoryRepo)
	planUC := preventive.NewPlanUseCase(planRepo, assetRepo, clock)
	sweepUC := preventive.NewSweepUseCase(txRunner, planRepo, clock, log)
	workOrderUC := workorder.NewUseCase(orderRepo, assetRepo, sectorRepo, workerRepo)
	purchaseUC := procurement.NewUseCase(txRunner, purchaseRepo, supplierRepo, partRepo, companyRepo, pdfGenerator, clock)
	dashboardUC := dashboard.NewUseCase(dashboardRepo)

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
		Title:    "GMAO Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		SectorUC:    sectorUC,
		WorkerUC:    workerUC,
		AssetUC:     assetUC,
		ToolUC:      toolUC,
		SparePartUC: sparePartUC,
		SupplierUC:  supplierUC,
		PlanUC:      planUC,
		SweepUC:     sweepUC,
		WorkOrderUC: workOrderUC,
		PurchaseUC:  purchaseUC,
		DashboardUC: dashboardUC,
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
