package importer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// Options controla la creación de referencias faltantes durante un lote.
// Con el flag en false, una referencia desconocida es una falla de fila con
// error descriptivo, nunca un salto silencioso.
type Options struct {
	CreateMissingCategories bool
	CreateMissingSuppliers  bool
}

// ImportUseCase orquesta Validar -> Resolver -> Construir -> Crear por fila y
// acumula los desenlaces en un ImportReport. Una fila mala nunca detiene el
// lote; solo condiciones de "el lote no puede continuar" (backend
// inalcanzable, contexto cancelado) salen como error.
type ImportUseCase struct {
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
) *ImportUseCase {
	return &ImportUseCase{
		categories: categories,
		suppliers:  suppliers,
		products:   products,
		orders:     orders,
	}
}

// ImportProducts procesa un lote de filas de producto en orden de entrada,
// una a la vez. El reporte conserva el orden de entrada en Results y deriva
// los contadores de ahí (Successful + Failed == Total siempre).
//
// Si ctx se cancela a mitad de lote, devuelve el reporte con las filas ya
// registradas junto con ctx.Err(): el llamador no pierde lo importado.
func (uc *ImportUseCase) ImportProducts(ctx context.Context, rows []CandidateRow, supermarketID string, opts Options) (*entity.ImportReport, error) {
	// Cache de deduplicación fresco por invocación; nunca se comparte entre lotes.
	res, err := newResolver(ctx, uc.categories, uc.suppliers, opts)
	if err != nil {
		return nil, err
	}

	results := make([]entity.RowResult, 0, len(rows))
	for i, raw := range rows {
		if err := ctx.Err(); err != nil {
			return uc.finish("product", results, res), err
		}
		results = append(results, uc.importProductRow(ctx, i+1, raw, supermarketID, res))
	}
	return uc.finish("product", results, res), nil
}

func (uc *ImportUseCase) importProductRow(ctx context.Context, index int, raw CandidateRow, supermarketID string, res *resolver) entity.RowResult {
	fail := func(err error) entity.RowResult {
		return entity.RowResult{RowIndex: index, Error: err.Error()}
	}

	fields, verr := validateProduct(ProductRowFromMap(raw))
	if verr != nil {
		return fail(verr)
	}
	category, err := res.resolveCategory(ctx, fields.Category)
	if err != nil {
		return fail(err)
	}
	supplier, err := res.resolveSupplier(ctx, fields.Supplier)
	if err != nil {
		return fail(err)
	}
	product := buildProduct(fields, category, supplier, supermarketID, time.Now())
	created, err := uc.products.Create(ctx, product)
	if err != nil {
		return fail(&domain.CreationError{Kind: "product", Err: err})
	}
	return entity.RowResult{RowIndex: index, Success: true, EntityID: created.ID, Entity: created}
}

// ImportOrders procesa un lote de órdenes con la misma política best-effort.
// Las órdenes no llevan referencias de categoría/proveedor: no se consultan
// los catálogos (un lote de órdenes importa aun con esos endpoints caídos) y
// el reporte sale con las listas de referencias nuevas vacías.
func (uc *ImportUseCase) ImportOrders(ctx context.Context, rows []CandidateRow, supermarketID string, _ Options) (*entity.ImportReport, error) {
	results := make([]entity.RowResult, 0, len(rows))
	for i, raw := range rows {
		if err := ctx.Err(); err != nil {
			return uc.finish("order", results, nil), err
		}
		results = append(results, uc.importOrderRow(ctx, i+1, raw, supermarketID))
	}
	return uc.finish("order", results, nil), nil
}

func (uc *ImportUseCase) importOrderRow(ctx context.Context, index int, raw CandidateRow, supermarketID string) entity.RowResult {
	fields, verr := validateOrder(OrderRowFromMap(raw))
	if verr != nil {
		return entity.RowResult{RowIndex: index, Error: verr.Error()}
	}
	order := buildOrder(fields, supermarketID, time.Now())
	created, err := uc.orders.Create(ctx, order)
	if err != nil {
		cerr := &domain.CreationError{Kind: "order", Err: err}
		return entity.RowResult{RowIndex: index, Error: cerr.Error()}
	}
	return entity.RowResult{RowIndex: index, Success: true, EntityID: created.ID, Entity: created}
}

// finish consolida el reporte: contadores derivados de Results y referencias
// nuevas en orden de creación (res nil para pipelines sin referencias, como
// el de órdenes). El reporte es inmutable una vez devuelto.
func (uc *ImportUseCase) finish(kind string, results []entity.RowResult, res *resolver) *entity.ImportReport {
	report := &entity.ImportReport{
		ID:            uuid.New().String(),
		Kind:          kind,
		Total:         len(results),
		NewCategories: []entity.ResolvedReference{},
		NewSuppliers:  []entity.ResolvedReference{},
		Results:       results,
		CreatedAt:     time.Now(),
	}
	if res != nil {
		report.NewCategories = res.createdRefs(entity.ReferenceCategory)
		report.NewSuppliers = res.createdRefs(entity.ReferenceSupplier)
	}
	for _, r := range results {
		if r.Success {
			report.Successful++
		}
	}
	report.Failed = report.Total - report.Successful
	return report
}
