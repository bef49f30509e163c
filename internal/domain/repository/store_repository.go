package repository

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// StoreRepository define el puerto hacia el backend para Store (DIP).
// Las tiendas se administran en el backend; aquí solo se listan para los
// selectores de tienda de la UI.
type StoreRepository interface {
	List(ctx context.Context) ([]*entity.Store, error)
}
