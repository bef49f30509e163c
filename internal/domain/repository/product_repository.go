package repository

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// ProductRepository define el puerto hacia el backend para Product (DIP).
// Create devuelve la entidad con el ID asignado por el backend.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateSupermarket reasigna un producto a otra tienda conservando su ID.
	UpdateSupermarket(ctx context.Context, id, supermarketID string) error
	ListBySupermarket(ctx context.Context, supermarketID string) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
