package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de una orden importada. ProductName queda como texto libre:
// el backend es quien hace el match contra su catálogo.
type OrderItem struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Order representa una orden ingresada por importación masiva.
type Order struct {
	ID              string
	SupermarketID   string
	ExternalOrderID string
	CustomerName    string
	Items           []OrderItem
	Total           decimal.Decimal
	CreatedAt       time.Time
}

// ComputeTotal suma quantity * unit_price de todas las líneas.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
