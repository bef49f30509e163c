package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// Asegura que ReportRepo implementa repository.ReportRepository.
var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo historial local de importaciones sobre PostgreSQL. La fila lleva
// el resumen en columnas (consultable) y el detalle por fila en JSONB.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de persistencia del historial.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

type reportDetail struct {
	NewCategories []entity.ResolvedReference `json:"new_categories"`
	NewSuppliers  []entity.ResolvedReference `json:"new_suppliers"`
	Results       []entity.RowResult         `json:"results"`
}

// Save persiste un reporte de importación completo.
func (r *ReportRepo) Save(ctx context.Context, report *entity.ImportReport) error {
	detail, err := json.Marshal(reportDetail{
		NewCategories: report.NewCategories,
		NewSuppliers:  report.NewSuppliers,
		Results:       report.Results,
	})
	if err != nil {
		return fmt.Errorf("serializar detalle del reporte: %w", err)
	}
	query := `
		INSERT INTO import_reports (id, kind, total, successful, failed, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		report.ID, report.Kind, report.Total, report.Successful, report.Failed,
		detail, report.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert import_report: %w", err)
	}
	return nil
}

// ListRecent devuelve los resúmenes más recientes, del más nuevo al más viejo.
func (r *ReportRepo) ListRecent(ctx context.Context, limit, offset int) ([]*entity.ImportReportSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT id, kind, total, successful, failed, created_at
		FROM import_reports ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list import_reports: %w", err)
	}
	defer rows.Close()

	var out []*entity.ImportReportSummary
	for rows.Next() {
		var s entity.ImportReportSummary
		if err := rows.Scan(&s.ID, &s.Kind, &s.Total, &s.Successful, &s.Failed, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan import_report: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// GetByID obtiene un reporte completo por ID, incluyendo el detalle por fila.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.ImportReport, error) {
	query := `
		SELECT id, kind, total, successful, failed, detail, created_at
		FROM import_reports WHERE id = $1`
	var report entity.ImportReport
	var detail []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID, &report.Kind, &report.Total, &report.Successful, &report.Failed,
		&detail, &report.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get import_report: %w", err)
	}
	var d reportDetail
	if err := json.Unmarshal(detail, &d); err != nil {
		return nil, fmt.Errorf("deserializar detalle del reporte: %w", err)
	}
	report.NewCategories = d.NewCategories
	report.NewSuppliers = d.NewSuppliers
	report.Results = d.Results
	return &report, nil
}
