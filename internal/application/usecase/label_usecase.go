package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

// LabelPDFGenerator puerto de salida para la impresión de etiquetas.
type LabelPDFGenerator interface {
	GenerateLabelsPDF(products []*entity.Product, copies int) ([]byte, error)
}

// LabelUseCase arma las hojas de etiquetas de góndola con código de barras.
type LabelUseCase struct {
	products  repository.ProductRepository
	generator LabelPDFGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(products repository.ProductRepository, generator LabelPDFGenerator) *LabelUseCase {
	return &LabelUseCase{products: products, generator: generator}
}

// GenerateLabels genera el PDF de etiquetas para los productos pedidos.
// Un ID inexistente es error de entrada: el usuario seleccionó productos
// desde la UI y un faltante indica un estado desactualizado.
func (uc *LabelUseCase) GenerateLabels(ctx context.Context, productIDs []string, copies int) ([]byte, error) {
	if len(productIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	products := make([]*entity.Product, 0, len(productIDs))
	for _, id := range productIDs {
		p, err := uc.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		products = append(products, p)
	}
	return uc.generator.GenerateLabelsPDF(products, copies)
}
