package repository

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// OrderRepository define el puerto hacia el backend para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
}
