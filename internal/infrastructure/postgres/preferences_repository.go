package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// Asegura que PreferencesRepo implementa repository.PreferencesRepository.
var _ repository.PreferencesRepository = (*PreferencesRepo)(nil)

// PreferencesRepo cache clave-valor de preferencias (moneda, listas guardadas)
// sobre PostgreSQL. Sin estado global: se inyecta donde se necesite.
type PreferencesRepo struct {
	pool *pgxpool.Pool
}

// NewPreferencesRepository construye el adaptador de preferencias.
func NewPreferencesRepository(pool *pgxpool.Pool) *PreferencesRepo {
	return &PreferencesRepo{pool: pool}
}

// Get obtiene el valor de una clave; ErrNotFound si no existe.
func (r *PreferencesRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM preferences WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get preference: %w", err)
	}
	return value, nil
}

// Set guarda (o reemplaza) el valor de una clave.
func (r *PreferencesRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}
