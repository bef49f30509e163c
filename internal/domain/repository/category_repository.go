package repository

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// CategoryRepository define el puerto hacia el backend para Category (DIP).
// List trae el catálogo completo; se llama una vez por lote, no por fila.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, name string) (*entity.Category, error)
}
