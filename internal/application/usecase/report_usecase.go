package usecase

import (
	"context"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
	"github.com/jhoicas/Mitienda-api/pkg/logger"
)

// ReportUseCase historial local de importaciones. Guardar el historial es
// best-effort: una falla de la DB local no invalida una importación que ya
// ocurrió contra el backend, solo se registra en el log.
type ReportUseCase struct {
	repo repository.ReportRepository
	log  *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{repo: repo, log: log}
}

// Record guarda el reporte en el historial sin propagar fallas de la DB local.
func (uc *ReportUseCase) Record(ctx context.Context, report *entity.ImportReport) {
	if err := uc.repo.Save(ctx, report); err != nil {
		uc.log.Warn().Err(err).Str("report_id", report.ID).Msg("no se pudo guardar el historial de importación")
	}
}

// ListRecent lista los resúmenes más recientes del historial.
func (uc *ReportUseCase) ListRecent(ctx context.Context, limit, offset int) ([]*entity.ImportReportSummary, error) {
	return uc.repo.ListRecent(ctx, limit, offset)
}

// GetByID obtiene un reporte completo del historial; nil si no existe.
func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*entity.ImportReport, error) {
	return uc.repo.GetByID(ctx, id)
}
