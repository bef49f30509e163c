package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

// defaultMinStockLevel umbral de reorden cuando la fila no lo trae.
const defaultMinStockLevel = 5

// buildProduct arma el payload canónico de producto a partir de la fila
// validada y las referencias ya resueltas. Es una función pura: sin I/O.
//
// Precedencia del precio exhibido: price explícito > selling_price >
// cost_price > 0. El supermercado es siempre el del llamador: una fila nunca
// elige su propia tienda.
func buildProduct(f *ProductFields, category, supplier *entity.ResolvedReference, supermarketID string, now time.Time) *entity.Product {
	p := &entity.Product{
		SupermarketID: supermarketID,
		Name:          f.Name,
		CategoryID:    category.ID,
		SupplierID:    supplier.ID,
		Quantity:      f.Quantity,
		Price:         displayPrice(f),
		MinStockLevel: defaultMinStockLevel,
		Certified:     f.Certified,
		ExpiryDate:    f.ExpiryDate,
		Brand:         f.Brand,
		Weight:        f.Weight,
		Origin:        f.Origin,
		Barcode:       f.Barcode,
		Description:   f.Description,
		Location:      f.Location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if f.CostPrice != nil {
		p.CostPrice = *f.CostPrice
	}
	if f.SellingPrice != nil {
		p.SellingPrice = *f.SellingPrice
	}
	if f.MinStock != nil {
		p.MinStockLevel = *f.MinStock
	}
	return p
}

func displayPrice(f *ProductFields) decimal.Decimal {
	switch {
	case f.Price != nil:
		return *f.Price
	case f.SellingPrice != nil:
		return *f.SellingPrice
	case f.CostPrice != nil:
		return *f.CostPrice
	default:
		return decimal.Zero
	}
}

// buildOrder arma el payload canónico de orden. El total se calcula de las
// líneas; los nombres de producto quedan como texto libre para el backend.
func buildOrder(f *OrderFields, supermarketID string, now time.Time) *entity.Order {
	o := &entity.Order{
		SupermarketID:   supermarketID,
		ExternalOrderID: f.ExternalOrderID,
		CustomerName:    f.CustomerName,
		Items:           f.Items,
		CreatedAt:       now,
	}
	o.Total = o.ComputeTotal()
	return o
}
