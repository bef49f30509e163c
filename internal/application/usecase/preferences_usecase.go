package usecase

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// Claves de preferencias conocidas por la UI.
const (
	PrefCurrency        = "currency"
	PrefSavedCategories = "saved_categories"
	PrefSavedSuppliers  = "saved_suppliers"
)

// PreferencesUseCase preferencias persistidas del usuario (moneda, listas
// guardadas), como dependencia explícita en lugar de estado global.
type PreferencesUseCase struct {
	repo repository.PreferencesRepository
}

// NewPreferencesUseCase construye el caso de uso.
func NewPreferencesUseCase(repo repository.PreferencesRepository) *PreferencesUseCase {
	return &PreferencesUseCase{repo: repo}
}

// Get obtiene el valor de una clave; ErrNotFound si nunca se guardó.
func (uc *PreferencesUseCase) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", domain.ErrInvalidInput
	}
	return uc.repo.Get(ctx, key)
}

// Set guarda (o reemplaza) el valor de una clave.
func (uc *PreferencesUseCase) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Set(ctx, key, value)
}
