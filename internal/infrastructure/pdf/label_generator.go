// Package pdf implementa la generación de etiquetas de góndola con código de
// barras para impresión (hoja A4, tres etiquetas por fila).
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

const labelsPerRow = 3

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// MarotoLabelGenerator genera hojas de etiquetas usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabelsPDF genera el PDF de etiquetas y devuelve sus bytes.
// copies repite cada producto esa cantidad de veces (mínimo 1). Si el
// producto no tiene código de barras se usa su ID como contenido del código.
func (g *MarotoLabelGenerator) GenerateLabelsPDF(products []*entity.Product, copies int) ([]byte, error) {
	if copies < 1 {
		copies = 1
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiquetas de productos", true).
		Build()

	m := maroto.New(cfg)

	var cols []core.Col
	flush := func() {
		if len(cols) == 0 {
			return
		}
		for len(cols) < labelsPerRow {
			cols = append(cols, col.New(12/labelsPerRow))
		}
		m.AddRows(row.New(28).Add(cols...))
		cols = nil
	}

	for _, p := range products {
		for i := 0; i < copies; i++ {
			cols = append(cols, labelCol(p))
			if len(cols) == labelsPerRow {
				flush()
			}
		}
	}
	flush()

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelCol: nombre + precio + código de barras de un producto.
func labelCol(p *entity.Product) core.Col {
	barcode := p.Barcode
	if barcode == "" {
		barcode = p.ID
	}
	return col.New(12 / labelsPerRow).Add(
		text.New(p.Name, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1,
		}),
		text.New("$ "+p.Price.StringFixed(2), props.Text{
			Size: 9, Align: align.Center, Top: 6,
		}),
		code.NewBar(barcode, props.Barcode{
			Top: 11, Center: true, Percent: 80, Proportion: props.Proportion{Width: 4, Height: 1},
		}),
		text.New(barcode, props.Text{
			Size: 6, Align: align.Center, Top: 24, Color: colorGray,
		}),
	)
}
