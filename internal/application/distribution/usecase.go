package distribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// TransferUseCase copia o mueve conjuntos de productos entre tiendas.
// Reusa las primitivas de construcción de entidades del importador: una copia
// es el mismo payload con ID vacío y supermercado destino.
type TransferUseCase struct {
	products repository.ProductRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(products repository.ProductRepository) *TransferUseCase {
	return &TransferUseCase{products: products}
}

// Transfer valida las precondiciones contra el índice de productos de la
// tienda origen (cargado una sola vez, no una consulta por producto) y luego
// ejecuta la acción producto por producto, best-effort: la falla de una copia
// no revierte las demás.
//
// Precondiciones (InvalidTransferError, antes de cualquier escritura):
// conjunto de productos no vacío, origen != destino, y todos los productos
// pertenecen a la tienda origen declarada.
func (uc *TransferUseCase) Transfer(ctx context.Context, req entity.TransferRequest) (*entity.TransferResult, error) {
	if req.Action != entity.TransferActionCopy && req.Action != entity.TransferActionMove {
		return nil, &domain.InvalidTransferError{Reason: "acción desconocida: " + req.Action}
	}
	if len(req.ProductIDs) == 0 {
		return nil, &domain.InvalidTransferError{Reason: "conjunto de productos vacío"}
	}
	if req.SourceStoreID == req.TargetStoreID {
		return nil, &domain.InvalidTransferError{Reason: "tienda origen y destino son la misma"}
	}

	sourceProducts, err := uc.products.ListBySupermarket(ctx, req.SourceStoreID)
	if err != nil {
		return nil, fmt.Errorf("listar productos de la tienda origen: %w", err)
	}
	index := make(map[string]*entity.Product, len(sourceProducts))
	for _, p := range sourceProducts {
		index[p.ID] = p
	}
	// ProductIDs es un conjunto: un ID repetido se procesa una sola vez.
	selected := make([]*entity.Product, 0, len(req.ProductIDs))
	seen := make(map[string]bool, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, ok := index[id]
		if !ok {
			return nil, &domain.InvalidTransferError{
				Reason: fmt.Sprintf("el producto %s no pertenece a la tienda origen %s", id, req.SourceStoreID),
			}
		}
		selected = append(selected, p)
	}

	result := &entity.TransferResult{Action: req.Action, Total: len(selected)}
	for _, p := range selected {
		item := entity.TransferItemResult{ProductID: p.ID}
		switch req.Action {
		case entity.TransferActionCopy:
			copied, err := uc.copyProduct(ctx, p, req.TargetStoreID)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Success = true
				item.NewProductID = copied.ID
			}
		case entity.TransferActionMove:
			if err := uc.products.UpdateSupermarket(ctx, p.ID, req.TargetStoreID); err != nil {
				item.Error = err.Error()
			} else {
				item.Success = true
			}
		}
		result.Items = append(result.Items, item)
	}
	for _, it := range result.Items {
		if it.Success {
			result.Successful++
		}
	}
	result.Failed = result.Total - result.Successful
	return result, nil
}

// copyProduct crea en la tienda destino un producto idéntico al origen salvo
// el ID (vacío: el backend asigna uno nuevo) y el supermercado.
func (uc *TransferUseCase) copyProduct(ctx context.Context, p *entity.Product, targetStoreID string) (*entity.Product, error) {
	clone := p.Clone(targetStoreID)
	now := time.Now()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	created, err := uc.products.Create(ctx, clone)
	if err != nil {
		return nil, &domain.CreationError{Kind: "product", Err: err}
	}
	return created, nil
}

// CreateInStores persiste un producto recién construido en varias tiendas a
// la vez ("agregar a todas mis tiendas"): la primera tienda es la canónica y
// las demás son copias independientes. Caso degenerado de copy, con la misma
// política best-effort que Transfer: la falla de una copia no impide intentar
// las tiendas restantes. Si la canónica falla no hay nada que copiar y el
// error sale directo.
func (uc *TransferUseCase) CreateInStores(ctx context.Context, product *entity.Product, storeIDs []string) ([]*entity.Product, error) {
	if len(storeIDs) == 0 {
		return nil, &domain.InvalidTransferError{Reason: "sin tiendas destino"}
	}
	canonical := product.Clone(storeIDs[0])
	canonical.CreatedAt = product.CreatedAt
	canonical.UpdatedAt = product.UpdatedAt
	created, err := uc.products.Create(ctx, canonical)
	if err != nil {
		return nil, &domain.CreationError{Kind: "product", Err: err}
	}
	out := []*entity.Product{created}
	var errs []error
	for _, storeID := range storeIDs[1:] {
		copied, err := uc.copyProduct(ctx, created, storeID)
		if err != nil {
			errs = append(errs, fmt.Errorf("tienda %s: %w", storeID, err))
			continue
		}
		out = append(out, copied)
	}
	return out, errors.Join(errs...)
}
