package repository

import "context"

// PreferencesRepository cache clave-valor de preferencias del usuario
// (moneda, listas guardadas). Se inyecta explícitamente: no hay estado global.
type PreferencesRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
