package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// Formatos de fecha aceptados en expiry_date, en orden de preferencia.
var expiryLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// ProductFields fila de producto ya validada y tipada. Los precios ausentes
// quedan en nil para que el builder aplique la precedencia de defaults.
type ProductFields struct {
	Name         string
	Category     string
	Supplier     string
	Quantity     int64
	Price        *decimal.Decimal
	CostPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
	ExpiryDate   time.Time
	MinStock     *int
	Certified    bool
	Brand        string
	Weight       string
	Origin       string
	Barcode      string
	Description  string
	Location     string
}

// validateProduct aplica el contrato de campos requeridos de una fila de
// producto. Una falla es local a la fila: produce ValidationError con la
// lista de campos rechazados y nunca detiene el lote.
func validateProduct(row ProductRow) (*ProductFields, *domain.ValidationError) {
	var bad []string
	f := &ProductFields{
		Name:        row.Name,
		Category:    row.Category,
		Supplier:    row.Supplier,
		Brand:       row.Brand,
		Weight:      row.Weight,
		Origin:      row.Origin,
		Barcode:     row.Barcode,
		Description: row.Description,
		Location:    row.Location,
	}

	if row.Name == "" {
		bad = append(bad, "name")
	}
	if row.Category == "" {
		bad = append(bad, "category")
	}
	if row.Supplier == "" {
		bad = append(bad, "supplier")
	}

	qty, err := strconv.ParseInt(row.Quantity, 10, 64)
	if row.Quantity == "" || err != nil || qty < 0 {
		bad = append(bad, "quantity")
	} else {
		f.Quantity = qty
	}

	f.Price = parsePositiveDecimal(row.Price)
	f.CostPrice = parsePositiveDecimal(row.CostPrice)
	f.SellingPrice = parsePositiveDecimal(row.SellingPrice)
	// Al menos uno de cost_price/selling_price debe ser un positivo parseable.
	if f.CostPrice == nil && f.SellingPrice == nil {
		bad = append(bad, "cost_price/selling_price")
	}

	if expiry, ok := parseExpiry(row.ExpiryDate); ok {
		f.ExpiryDate = expiry
	} else {
		bad = append(bad, "expiry_date")
	}

	if row.MinStock != "" {
		if n, err := strconv.Atoi(row.MinStock); err == nil && n >= 0 {
			f.MinStock = &n
		} else {
			bad = append(bad, "min_stock_level")
		}
	}
	// Certificación: true salvo false explícito (tolerante a celdas string).
	f.Certified = !strings.EqualFold(row.Certified, "false")

	if len(bad) > 0 {
		return nil, &domain.ValidationError{Fields: bad}
	}
	return f, nil
}

// OrderFields fila de orden ya validada y tipada.
type OrderFields struct {
	ExternalOrderID string
	CustomerName    string
	Items           []entity.OrderItem
}

// validateOrder exige al menos un ítem y, por ítem, product no vacío,
// quantity > 0 y unit_price >= 0.
func validateOrder(row OrderRow) (*OrderFields, *domain.ValidationError) {
	if len(row.Items) == 0 {
		return nil, &domain.ValidationError{Fields: []string{"items"}}
	}
	var bad []string
	f := &OrderFields{
		ExternalOrderID: row.ExternalOrderID,
		CustomerName:    row.CustomerName,
	}
	for i, it := range row.Items {
		item := entity.OrderItem{ProductName: it.Product}
		if it.Product == "" {
			bad = append(bad, fmt.Sprintf("items[%d].product", i))
		}
		qty, err := strconv.ParseInt(it.Quantity, 10, 64)
		if it.Quantity == "" || err != nil || qty <= 0 {
			bad = append(bad, fmt.Sprintf("items[%d].quantity", i))
		} else {
			item.Quantity = qty
		}
		price, err := decimal.NewFromString(it.UnitPrice)
		if it.UnitPrice == "" || err != nil || price.IsNegative() {
			bad = append(bad, fmt.Sprintf("items[%d].unit_price", i))
		} else {
			item.UnitPrice = price
		}
		f.Items = append(f.Items, item)
	}
	if len(bad) > 0 {
		return nil, &domain.ValidationError{Fields: bad}
	}
	return f, nil
}

// parsePositiveDecimal devuelve nil si la celda está vacía, no parsea o no es
// positiva; el builder trata nil como "campo ausente".
func parsePositiveDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return nil
	}
	return &d
}

func parseExpiry(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
