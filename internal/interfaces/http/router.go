package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mitienda-api/internal/application/distribution"
	"github.com/jhoicas/Mitienda-api/internal/application/importer"
	"github.com/jhoicas/Mitienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ImportUC   *importer.ImportUseCase
	TransferUC *distribution.TransferUseCase
	ProductUC  *usecase.ProductUseCase
	StoreUC    *usecase.StoreUseCase
	LabelUC    *usecase.LabelUseCase
	ReportUC   *usecase.ReportUseCase
	PrefsUC    *usecase.PreferencesUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Importaciones masivas + historial
	imports := api.Group("/imports")
	importHandler := NewImportHandler(deps.ImportUC, deps.ReportUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	imports.Post("/products", importHandler.ImportProducts)
	imports.Post("/orders", importHandler.ImportOrders)
	imports.Get("/", reportHandler.List)
	imports.Get("/:id", reportHandler.GetByID)

	// Transferencias entre tiendas
	transferHandler := NewTransferHandler(deps.TransferUC)
	api.Post("/transfers", transferHandler.Transfer)

	// Productos (passthrough al backend)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Tiendas del usuario (selectores de la UI)
	storeHandler := NewStoreHandler(deps.StoreUC)
	api.Get("/stores", storeHandler.List)

	// Etiquetas de góndola
	labelHandler := NewLabelHandler(deps.LabelUC)
	api.Post("/labels", labelHandler.Generate)

	// Preferencias persistidas
	prefs := api.Group("/preferences")
	prefsHandler := NewPreferencesHandler(deps.PrefsUC)
	prefs.Get("/:key", prefsHandler.Get)
	prefs.Put("/:key", prefsHandler.Set)
}
