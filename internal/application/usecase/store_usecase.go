package usecase

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/application/dto"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// StoreUseCase lista las tiendas del usuario para los selectores de la UI
// (importar a, transferir entre, agregar a todas).
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// List devuelve las tiendas del usuario.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	stores, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreResponse{ID: s.ID, Name: s.Name, Address: s.Address})
	}
	return out, nil
}
