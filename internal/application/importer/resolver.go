package importer

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// folder case-folding Unicode para claves de referencia: "Beverages" y
// " beverages " deben resolver al mismo ID.
var folder = cases.Fold()

// referenceKey normaliza un nombre libre (trim + case-fold).
func referenceKey(name string) string {
	return folder.String(strings.TrimSpace(name))
}

type refKey struct {
	kind string
	name string
}

// resolver resuelve nombres libres de categoría/proveedor a IDs canónicos.
// Se construye fresco por lote: el cache de deduplicación garantiza a lo sumo
// una llamada create por nombre distinto por lote. No es seguro para uso
// concurrente; el importador procesa las filas en secuencia. Dos llamadores
// concurrentes importando el mismo nombre nuevo sí pueden duplicarlo: riesgo
// aceptado para un flujo interactivo disparado por humanos.
type resolver struct {
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository

	createCategories bool
	createSuppliers  bool

	cache   map[refKey]*entity.ResolvedReference
	index   map[refKey]string // catálogo ya existente: clave normalizada -> ID
	created []*entity.ResolvedReference
}

// newResolver trae los catálogos de categorías y proveedores una sola vez por
// lote y construye el índice por nombre normalizado. Un error aquí es "el
// lote no puede continuar" (backend inalcanzable), no una falla por fila.
func newResolver(
	ctx context.Context,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	opts Options,
) (*resolver, error) {
	r := &resolver{
		categories:       categories,
		suppliers:        suppliers,
		createCategories: opts.CreateMissingCategories,
		createSuppliers:  opts.CreateMissingSuppliers,
		cache:            make(map[refKey]*entity.ResolvedReference),
		index:            make(map[refKey]string),
	}
	cats, err := categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	for _, c := range cats {
		r.index[refKey{entity.ReferenceCategory, referenceKey(c.Name)}] = c.ID
	}
	sups, err := suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	for _, s := range sups {
		r.index[refKey{entity.ReferenceSupplier, referenceKey(s.Name)}] = s.ID
	}
	return r, nil
}

// resolveCategory resuelve (o crea a lo sumo una vez por lote) una categoría.
func (r *resolver) resolveCategory(ctx context.Context, rawName string) (*entity.ResolvedReference, error) {
	return r.resolve(ctx, entity.ReferenceCategory, rawName, r.createCategories, func(ctx context.Context, name string) (string, error) {
		c, err := r.categories.Create(ctx, name)
		if err != nil {
			return "", err
		}
		return c.ID, nil
	})
}

// resolveSupplier resuelve (o crea a lo sumo una vez por lote) un proveedor.
func (r *resolver) resolveSupplier(ctx context.Context, rawName string) (*entity.ResolvedReference, error) {
	return r.resolve(ctx, entity.ReferenceSupplier, rawName, r.createSuppliers, func(ctx context.Context, name string) (string, error) {
		s, err := r.suppliers.Create(ctx, name)
		if err != nil {
			return "", err
		}
		return s.ID, nil
	})
}

func (r *resolver) resolve(
	ctx context.Context,
	kind, rawName string,
	createMissing bool,
	create func(context.Context, string) (string, error),
) (*entity.ResolvedReference, error) {
	key := refKey{kind, referenceKey(rawName)}

	if ref, ok := r.cache[key]; ok {
		return ref, nil
	}
	if id, ok := r.index[key]; ok {
		ref := &entity.ResolvedReference{Kind: kind, Name: strings.TrimSpace(rawName), ID: id}
		r.cache[key] = ref
		return ref, nil
	}
	if !createMissing {
		return nil, &domain.ResolutionError{Kind: kind, Name: strings.TrimSpace(rawName)}
	}
	name := strings.TrimSpace(rawName)
	id, err := create(ctx, name)
	if err != nil {
		// No se cachea la falla: una fila posterior con el mismo nombre
		// obtiene un reintento limpio en este mismo lote.
		return nil, &domain.ResolutionError{Kind: kind, Name: name, Err: err}
	}
	ref := &entity.ResolvedReference{Kind: kind, Name: name, ID: id, Created: true}
	r.cache[key] = ref
	r.created = append(r.created, ref)
	return ref, nil
}

// createdRefs devuelve las referencias creadas durante el lote, de un tipo,
// en orden de creación. El cache ya garantiza que no hay duplicados.
func (r *resolver) createdRefs(kind string) []entity.ResolvedReference {
	out := make([]entity.ResolvedReference, 0)
	for _, ref := range r.created {
		if ref.Kind == kind {
			out = append(out, *ref)
		}
	}
	return out
}
