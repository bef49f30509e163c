package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de una tienda (scope por supermercado).
// Price es el precio exhibido; CostPrice y SellingPrice vienen del importador.
type Product struct {
	ID            string
	SupermarketID string
	Name          string
	CategoryID    string
	SupplierID    string
	Quantity      int64
	Price         decimal.Decimal // precio exhibido
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	MinStockLevel int  // umbral de reorden
	Certified     bool // certificación sanitaria
	ExpiryDate    time.Time
	Brand         string
	Weight        string
	Origin        string
	Barcode       string
	Description   string
	Location      string // ubicación física en la tienda (pasillo/estante)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone devuelve una copia del producto lista para crearse en otra tienda:
// sin ID (el backend asigna uno nuevo) y con el supermercado destino.
func (p *Product) Clone(targetSupermarketID string) *Product {
	cp := *p
	cp.ID = ""
	cp.SupermarketID = targetSupermarketID
	return &cp
}
