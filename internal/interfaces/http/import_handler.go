package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mitienda-api/internal/application/dto"
	"github.com/jhoicas/Mitienda-api/internal/application/importer"
	"github.com/jhoicas/Mitienda-api/internal/application/usecase"
	"github.com/jhoicas/Mitienda-api/internal/domain"
)

// ImportHandler maneja las importaciones masivas (protegido).
type ImportHandler struct {
	uc      *importer.ImportUseCase
	reports *usecase.ReportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase, reports *usecase.ReportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc, reports: reports}
}

// ImportProducts godoc
// @Summary      Importar productos en lote
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportProductsRequest  true  "Filas a importar"
// @Success      200   {object}  entity.ImportReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/imports/products [post]
func (h *ImportHandler) ImportProducts(c *fiber.Ctx) error {
	var in dto.ImportProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || len(in.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y rows son requeridos"})
	}

	rows := make([]importer.CandidateRow, 0, len(in.Rows))
	for _, r := range in.Rows {
		rows = append(rows, importer.CandidateRow(r))
	}
	report, err := h.uc.ImportProducts(c.UserContext(), rows, in.StoreID, importOptions(in.Options))
	if err != nil {
		return importError(c, err)
	}
	h.reports.Record(c.UserContext(), report)
	return c.JSON(report)
}

// ImportOrders godoc
// @Summary      Importar órdenes en lote
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportOrdersRequest  true  "Órdenes a importar"
// @Success      200   {object}  entity.ImportReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/imports/orders [post]
func (h *ImportHandler) ImportOrders(c *fiber.Ctx) error {
	var in dto.ImportOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || len(in.Orders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y orders son requeridos"})
	}

	rows := make([]importer.CandidateRow, 0, len(in.Orders))
	for _, r := range in.Orders {
		rows = append(rows, importer.CandidateRow(r))
	}
	report, err := h.uc.ImportOrders(c.UserContext(), rows, in.StoreID, importOptions(in.Options))
	if err != nil {
		return importError(c, err)
	}
	h.reports.Record(c.UserContext(), report)
	return c.JSON(report)
}

// importOptions aplica el default de creación habilitada cuando el cliente no
// envía los flags.
func importOptions(in dto.ImportOptionsRequest) importer.Options {
	opts := importer.Options{CreateMissingCategories: true, CreateMissingSuppliers: true}
	if in.CreateMissingCategories != nil {
		opts.CreateMissingCategories = *in.CreateMissingCategories
	}
	if in.CreateMissingSuppliers != nil {
		opts.CreateMissingSuppliers = *in.CreateMissingSuppliers
	}
	return opts
}

// importError: un error aquí es "el lote no pudo continuar" (backend
// inalcanzable o contexto cancelado); las fallas por fila ya van en el reporte.
func importError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
