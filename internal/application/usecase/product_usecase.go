package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Mitienda-api/internal/application/distribution"
	"github.com/jhoicas/Mitienda-api/internal/application/dto"
	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos contra el backend de la tienda. La
// creación multi-tienda delega en el distribuidor (primera tienda canónica,
// el resto copias).
type ProductUseCase struct {
	repo        repository.ProductRepository
	distributor *distribution.TransferUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, distributor *distribution.TransferUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, distributor: distributor}
}

// Create crea el producto en cada tienda solicitada. Devuelve las entidades
// que sí quedaron creadas, en el orden de StoreIDs; las copias fallidas se
// acumulan en el error sin impedir las demás (best-effort, como el importador).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) ([]dto.ProductResponse, error) {
	if len(in.StoreIDs) == 0 || in.Name == "" || in.CategoryID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		Quantity:      in.Quantity,
		Price:         in.Price,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		MinStockLevel: 5,
		Certified:     true,
		Brand:         in.Brand,
		Weight:        in.Weight,
		Origin:        in.Origin,
		Barcode:       in.Barcode,
		Description:   in.Description,
		Location:      in.Location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.Certified != nil {
		product.Certified = *in.Certified
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = *in.ExpiryDate
	}

	created, err := uc.distributor.CreateInStores(ctx, product, in.StoreIDs)
	out := make([]dto.ProductResponse, 0, len(created))
	for _, p := range created {
		out = append(out, toProductResponse(p))
	}
	return out, err
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update actualiza los campos presentes de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.Certified != nil {
		product.Certified = *in.Certified
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = *in.ExpiryDate
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if in.Origin != nil {
		product.Origin = *in.Origin
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// ListByStore lista los productos de una tienda.
func (uc *ProductUseCase) ListByStore(ctx context.Context, supermarketID string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListBySupermarket(ctx, supermarketID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:            p.ID,
		SupermarketID: p.SupermarketID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		Quantity:      p.Quantity,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		MinStockLevel: p.MinStockLevel,
		Certified:     p.Certified,
		Brand:         p.Brand,
		Weight:        p.Weight,
		Origin:        p.Origin,
		Barcode:       p.Barcode,
		Description:   p.Description,
		Location:      p.Location,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if !p.ExpiryDate.IsZero() {
		expiry := p.ExpiryDate
		resp.ExpiryDate = &expiry
	}
	return resp
}
