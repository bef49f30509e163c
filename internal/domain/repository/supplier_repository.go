package repository

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// SupplierRepository define el puerto hacia el backend para Supplier (DIP).
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	Create(ctx context.Context, name string) (*entity.Supplier, error)
}
