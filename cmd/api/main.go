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

	"github.com/jhoicas/Mitienda-api/internal/application/distribution"
	"github.com/jhoicas/Mitienda-api/internal/application/importer"
	"github.com/jhoicas/Mitienda-api/internal/application/usecase"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
	"github.com/jhoicas/Mitienda-api/internal/infrastructure/backendapi"
	"github.com/jhoicas/Mitienda-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Mitienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Mitienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Mitienda-api/internal/interfaces/http"
	"github.com/jhoicas/Mitienda-api/pkg/config"
	"github.com/jhoicas/Mitienda-api/pkg/jwt"
	"github.com/jhoicas/Mitienda-api/pkg/logger"
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
		Str("backend_mode", cfg.Backend.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Backend de la tienda: REST en producción, memoria en modo dev.
	var (
		categoryRepo repository.CategoryRepository
		supplierRepo repository.SupplierRepository
		productRepo  repository.ProductRepository
		orderRepo    repository.OrderRepository
		storeRepo    repository.StoreRepository
	)
	if cfg.Backend.Mode == "dev" {
		backend := memory.NewBackend()
		backend.SeedStore("Tienda Centro", "Calle 1 # 2-34")
		backend.SeedStore("Tienda Norte", "Av. 5 # 67-89")
		categoryRepo = backend.Categories()
		supplierRepo = backend.Suppliers()
		productRepo = backend.Products()
		orderRepo = backend.Orders()
		storeRepo = backend.Stores()

		if token, err := jwt.Generate(cfg.JWT.Secret, "dev", cfg.JWT.Issuer, cfg.JWT.Expiration); err == nil {
			log.Info().Str("token", token).Msg("token de desarrollo")
		}
	} else {
		client := backendapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token)
		categoryRepo = client.Categories()
		supplierRepo = client.Suppliers()
		productRepo = client.Products()
		orderRepo = client.Orders()
		storeRepo = client.Stores()
	}

	reportRepo := postgres.NewReportRepository(pool)
	prefsRepo := postgres.NewPreferencesRepository(pool)

	importUC := importer.NewImportUseCase(categoryRepo, supplierRepo, productRepo, orderRepo)
	transferUC := distribution.NewTransferUseCase(productRepo)
	productUC := usecase.NewProductUseCase(productRepo, transferUC)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	labelUC := usecase.NewLabelUseCase(productRepo, infrapdf.NewMarotoLabelGenerator())
	reportUC := usecase.NewReportUseCase(reportRepo, log)
	prefsUC := usecase.NewPreferencesUseCase(prefsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mitienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ImportUC:   importUC,
		TransferUC: transferUC,
		ProductUC:  productUC,
		StoreUC:    storeUC,
		LabelUC:    labelUC,
		ReportUC:   reportUC,
		PrefsUC:    prefsUC,
		JWTSecret:  cfg.JWT.Secret,
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
