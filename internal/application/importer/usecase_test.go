package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mitienda-api/internal/application/importer"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
	"github.com/jhoicas/Mitienda-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testStoreID = "store-1"

// countingCategories envuelve el backend en memoria contando las llamadas a
// Create, para verificar la deduplicación por lote.
type countingCategories struct {
	repository.CategoryRepository
	creates int
}

func (c *countingCategories) Create(ctx context.Context, name string) (*entity.Category, error) {
	c.creates++
	return c.CategoryRepository.Create(ctx, name)
}

// flakyCategories falla las primeras failures llamadas a Create y luego delega.
type flakyCategories struct {
	repository.CategoryRepository
	failures int
	creates  int
}

func (c *flakyCategories) Create(ctx context.Context, name string) (*entity.Category, error) {
	c.creates++
	if c.failures > 0 {
		c.failures--
		return nil, errors.New("backend caído")
	}
	return c.CategoryRepository.Create(ctx, name)
}

func newUseCase(backend *memory.Backend) *importer.ImportUseCase {
	return importer.NewImportUseCase(
		backend.Categories(), backend.Suppliers(), backend.Products(), backend.Orders(),
	)
}

func allOptions() importer.Options {
	return importer.Options{CreateMissingCategories: true, CreateMissingSuppliers: true}
}

func productRow(name, category, supplier string, extra map[string]any) importer.CandidateRow {
	row := importer.CandidateRow{
		"name":          name,
		"category":      category,
		"supplier":      supplier,
		"quantity":      "10",
		"selling_price": "2.5",
		"expiry_date":   "2025-01-01",
	}
	for k, v := range extra {
		row[k] = v
	}
	return row
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de extremo a extremo
// ──────────────────────────────────────────────────────────────────────────────

// Dos filas contra catálogos vacíos: "Dairy" y "dairy" deben compartir una
// sola categoría nueva (case-insensitive), "Acme" un solo proveedor, y ambas
// filas deben importarse con éxito.
func TestImportProducts_EscenarioCompleto(t *testing.T) {
	backend := memory.NewBackend()
	uc := newUseCase(backend)

	rows := []importer.CandidateRow{
		{"name": "Milk", "category": "Dairy", "supplier": "Acme", "quantity": 10, "selling_price": 2.5, "expiry_date": "2025-01-01"},
		{"name": "Yogurt", "category": "dairy", "supplier": "Acme", "quantity": 5, "cost_price": 1, "expiry_date": "2025-02-01"},
	}

	report, err := uc.ImportProducts(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Successful)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, report.NewCategories, 1, "Dairy y dairy deben compartir una sola categoría nueva")
	assert.Equal(t, "Dairy", report.NewCategories[0].Name)
	assert.True(t, report.NewCategories[0].Created)
	require.Len(t, report.NewSuppliers, 1)
	assert.Equal(t, "Acme", report.NewSuppliers[0].Name)

	// Las filas exitosas llevan la entidad creada, no solo su ID.
	require.NotNil(t, report.Results[0].Entity)
	milk, ok := report.Results[0].Entity.(*entity.Product)
	require.True(t, ok)
	assert.Equal(t, "Milk", milk.Name)
	assert.Equal(t, report.Results[0].EntityID, milk.ID)

	products, err := backend.Products().ListBySupermarket(context.Background(), testStoreID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, products[0].CategoryID, products[1].CategoryID,
		"ambas filas deben resolver al mismo ID de categoría")
	assert.Equal(t, products[0].SupplierID, products[1].SupplierID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Deduplicación de referencias
// ──────────────────────────────────────────────────────────────────────────────

// N filas que referencian la misma categoría nueva con variaciones de mayúsculas
// y espacios deben producir exactamente una llamada Create y un solo ID.
func TestImportProducts_CreacionIdempotenteDeReferencias(t *testing.T) {
	backend := memory.NewBackend()
	counting := &countingCategories{CategoryRepository: backend.Categories()}
	uc := importer.NewImportUseCase(counting, backend.Suppliers(), backend.Products(), backend.Orders())

	rows := []importer.CandidateRow{
		productRow("A", "Beverages", "Acme", nil),
		productRow("B", " beverages ", "Acme", nil),
		productRow("C", "BEVERAGES", "Acme", nil),
		productRow("D", "beVeRaGes", "Acme", nil),
	}

	report, err := uc.ImportProducts(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, counting.creates, "una sola llamada create por nombre distinto por lote")
	assert.Equal(t, 4, report.Successful)
	require.Len(t, report.NewCategories, 1)

	products, err := backend.Products().ListBySupermarket(context.Background(), testStoreID)
	require.NoError(t, err)
	for _, p := range products {
		assert.Equal(t, report.NewCategories[0].ID, p.CategoryID,
			"las N filas deben resolver al mismo identificador")
	}
}

// Una referencia que ya existe en el backend no debe crear nada ni aparecer
// entre las referencias nuevas.
func TestImportProducts_ReferenciaExistenteNoSeCrea(t *testing.T) {
	backend := memory.NewBackend()
	existing, err := backend.Categories().Create(context.Background(), "Dairy")
	require.NoError(t, err)

	counting := &countingCategories{CategoryRepository: backend.Categories()}
	uc := importer.NewImportUseCase(counting, backend.Suppliers(), backend.Products(), backend.Orders())

	rows := []importer.CandidateRow{productRow("Milk", " DAIRY ", "Acme", nil)}
	report, err := uc.ImportProducts(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)

	assert.Zero(t, counting.creates)
	assert.Empty(t, report.NewCategories)
	products, _ := backend.Products().ListBySupermarket(context.Background(), testStoreID)
	require.Len(t, products, 1)
	assert.Equal(t, existing.ID, products[0].CategoryID)
}

// Si el create de la referencia falla, la falla no se cachea: una fila
// posterior con el mismo nombre obtiene un reintento limpio.
func TestImportProducts_FallaDeCreacionNoEnvenenaElCache(t *testing.T) {
	backend := memory.NewBackend()
	flaky := &flakyCategories{CategoryRepository: backend.Categories(), failures: 1}
	uc := importer.NewImportUseCase(flaky, backend.Suppliers(), backend.Products(), backend.Orders())

	rows := []importer.CandidateRow{
		productRow("A", "Snacks", "Acme", nil),
		productRow("B", "snacks", "Acme", nil),
	}

	report, err := uc.ImportProducts(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, flaky.creates, "la segunda fila debe reintentar el create")
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Successful)
	assert.False(t, report.Results[0].Success)
	assert.Contains(t, report.Results[0].Error, "Category not found and could not be created: Snacks")
	assert.True(t, report.Results[1].Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de fallas y flags de creación
// ──────────────────────────────────────────────────────────────────────────────

// [válida, inválida, válida]: la fila mala no detiene el lote y ambas filas
// válidas terminan creadas en el backend.
func TestImportProducts_FallaParcialAislada(t *testing.T) {
	backend := memory.NewBackend()
	uc := newUseCase(backend)

	rows := []importer.CandidateRow{
		productRow("Milk", "Dairy", "Acme", nil),
		{"name": "", "quantity": "no-numero"},
		productRow("Yogurt", "Dairy", "Acme", nil),
	}

	report, err := uc.ImportProducts(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Successful)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 3)
	assert.Equal(t, report.Total, report.Successful+report.Failed,
		"successful + failed == total debe cumplirse siempre")

	// El orden de entrada se conserva en los resultados.
	assert.Equal(t, []int{1, 2, 3}, []int{
		report.Results[0].RowIndex, report.Results[1].RowIndex, report.Results[2].RowIndex,
	})
	assert.False(t, report.Results[1].Success)
	assert.Contains(t, report.Results[1].Error, "validation:")

	products, _ := backend.Products().ListBySupermarket(context.Background(), testStoreID)
	assert.Len(t, products, 2, "las filas válidas deben existir en el backend")
}

// Con la creación de categorías deshabilitada, una categoría desconocida es
// una falla de fila con error descriptivo y cero llamadas create.
func TestImportProducts_RespetaFlagDeCreacion(t *testing.T) {
	backend := memory.NewBackend()
	counting := &countingCategories{CategoryRepository: backend.Categories()}
	uc := importer.NewImportUseCase(counting, backend.Suppliers(), backend.Products(), backend.Orders())

	rows := []importer.CandidateRow{productRow("Milk", "Dairy", "Acme", nil)}
	opts := importer.Options{CreateMissingCategories: false, CreateMissingSuppliers: true}

	report, err := uc.ImportProducts(context.Background(), rows, testStoreID, opts)
	require.NoError(t, err)

	assert.Zero(t, counting.creates, "no debe haber llamadas create con el flag en false")
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Results[0].Error, "Category not found and could not be created: Dairy")
	assert.Empty(t, report.NewCategories)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelación y fallas de lote completo
// ──────────────────────────────────────────────────────────────────────────────

// Un contexto ya cancelado devuelve el reporte parcial junto con ctx.Err():
// el llamador nunca pierde las filas ya registradas.
func TestImportProducts_ContextoCancelado(t *testing.T) {
	backend := memory.NewBackend()
	uc := newUseCase(backend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := []importer.CandidateRow{productRow("Milk", "Dairy", "Acme", nil)}
	report, err := uc.ImportProducts(ctx, rows, testStoreID, allOptions())

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report, "el reporte parcial debe devolverse junto con el error")
	assert.Zero(t, report.Total)
}

// errorLister simula un backend inalcanzable en el prefetch del catálogo.
type errorLister struct {
	repository.CategoryRepository
}

func (e *errorLister) List(ctx context.Context) ([]*entity.Category, error) {
	return nil, errors.New("connection refused")
}

// Backend inalcanzable al armar el resolver: el lote entero no puede
// continuar y sale como error, no como N filas fallidas.
func TestImportProducts_BackendInalcanzableAbortaElLote(t *testing.T) {
	backend := memory.NewBackend()
	uc := importer.NewImportUseCase(
		&errorLister{CategoryRepository: backend.Categories()},
		backend.Suppliers(), backend.Products(), backend.Orders(),
	)

	rows := []importer.CandidateRow{productRow("Milk", "Dairy", "Acme", nil)}
	report, err := uc.ImportProducts(context.Background(), rows, testStoreID, allOptions())

	require.Error(t, err)
	assert.Nil(t, report)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación de órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestImportOrders_LoteMixto(t *testing.T) {
	backend := memory.NewBackend()
	uc := newUseCase(backend)

	rows := []importer.CandidateRow{
		{
			"external_order_id": "ORD-1",
			"customer_name":     "Ana",
			"items": []any{
				map[string]any{"product": "Milk", "quantity": 2, "unit_price": 2.5},
				map[string]any{"product": "Bread", "quantity": 1, "unit_price": 1.2},
			},
		},
		{"customer_name": "Luis"}, // sin items: inválida
	}

	report, err := uc.ImportOrders(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)

	assert.Equal(t, "order", report.Kind)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Successful)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, report.Results[0].Success)
	assert.NotEmpty(t, report.Results[0].EntityID)
	order, ok := report.Results[0].Entity.(*entity.Order)
	require.True(t, ok, "la fila exitosa lleva la orden creada")
	assert.Equal(t, "ORD-1", order.ExternalOrderID)
	assert.Contains(t, report.Results[1].Error, "items")
	assert.Nil(t, report.Results[1].Entity, "la fila fallida no lleva entidad")
}

// errorSupplierLister simula el catálogo de proveedores inalcanzable.
type errorSupplierLister struct {
	repository.SupplierRepository
}

func (e *errorSupplierLister) List(ctx context.Context) ([]*entity.Supplier, error) {
	return nil, errors.New("connection refused")
}

// Las órdenes no referencian categorías ni proveedores: el lote debe importar
// completo aun con ambos catálogos caídos.
func TestImportOrders_NoDependeDeLosCatalogos(t *testing.T) {
	backend := memory.NewBackend()
	uc := importer.NewImportUseCase(
		&errorLister{CategoryRepository: backend.Categories()},
		&errorSupplierLister{SupplierRepository: backend.Suppliers()},
		backend.Products(), backend.Orders(),
	)

	rows := []importer.CandidateRow{
		{
			"external_order_id": "ORD-1",
			"customer_name":     "Ana",
			"items": []any{
				map[string]any{"product": "Milk", "quantity": 2, "unit_price": 2.5},
			},
		},
	}

	report, err := uc.ImportOrders(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Successful)
	assert.Empty(t, report.NewCategories)
	assert.Empty(t, report.NewSuppliers)
}

func TestImportOrders_ItemInvalidoFallaLaFila(t *testing.T) {
	backend := memory.NewBackend()
	uc := newUseCase(backend)

	rows := []importer.CandidateRow{
		{
			"items": []any{
				map[string]any{"product": "Milk", "quantity": 0, "unit_price": 2.5},
			},
		},
	}

	report, err := uc.ImportOrders(context.Background(), rows, testStoreID, allOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Results[0].Error, "items[0].quantity")
}
