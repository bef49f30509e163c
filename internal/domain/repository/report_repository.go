package repository

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// ReportRepository define el puerto de persistencia local del historial de
// importaciones. A diferencia de los demás puertos, este no habla con el
// backend remoto: es almacenamiento propio de la aplicación.
type ReportRepository interface {
	Save(ctx context.Context, report *entity.ImportReport) error
	ListRecent(ctx context.Context, limit, offset int) ([]*entity.ImportReportSummary, error)
	GetByID(ctx context.Context, id string) (*entity.ImportReport, error)
}
