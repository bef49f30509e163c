package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CandidateRow registro plano tal como llega del Row Source (hoja de cálculo
// parseada o arreglo JSON): nombre de columna -> valor crudo. Vive solo
// durante una llamada de importación.
type CandidateRow map[string]any

// ProductRow forma normalizada de una fila de importación de productos.
// El adaptador resuelve los alias de columna (category/category_name,
// supplier/supplier_name) antes de la validación; después de este punto las
// filas ya no son duck-typed.
type ProductRow struct {
	Name         string
	Category     string
	Supplier     string
	Quantity     string
	Price        string
	CostPrice    string
	SellingPrice string
	ExpiryDate   string
	MinStock     string
	Certified    string
	Brand        string
	Weight       string
	Origin       string
	Barcode      string
	Description  string
	Location     string
}

// OrderItemRow línea cruda de una orden importada.
type OrderItemRow struct {
	Product   string
	Quantity  string
	UnitPrice string
}

// OrderRow forma normalizada de una fila de importación de órdenes.
type OrderRow struct {
	ExternalOrderID string
	CustomerName    string
	Items           []OrderItemRow
}

// ProductRowFromMap adapta una fila cruda a ProductRow. Tolera celdas de
// hoja de cálculo tipadas como número o booleano: todo se lleva a string y
// el validador decide si parsea.
func ProductRowFromMap(raw CandidateRow) ProductRow {
	return ProductRow{
		Name:         rawString(raw, "name"),
		Category:     rawString(raw, "category", "category_name"),
		Supplier:     rawString(raw, "supplier", "supplier_name"),
		Quantity:     rawString(raw, "quantity"),
		Price:        rawString(raw, "price"),
		CostPrice:    rawString(raw, "cost_price"),
		SellingPrice: rawString(raw, "selling_price"),
		ExpiryDate:   rawString(raw, "expiry_date"),
		MinStock:     rawString(raw, "min_stock_level", "minimum_stock"),
		Certified:    rawString(raw, "certified", "certification"),
		Brand:        rawString(raw, "brand"),
		Weight:       rawString(raw, "weight"),
		Origin:       rawString(raw, "origin"),
		Barcode:      rawString(raw, "barcode"),
		Description:  rawString(raw, "description"),
		Location:     rawString(raw, "location"),
	}
}

// OrderRowFromMap adapta una fila cruda de orden. Items ausente o con tipo
// inesperado queda como lista vacía (el validador la rechaza).
func OrderRowFromMap(raw CandidateRow) OrderRow {
	row := OrderRow{
		ExternalOrderID: rawString(raw, "external_order_id"),
		CustomerName:    rawString(raw, "customer_name"),
	}
	items, ok := raw["items"].([]any)
	if !ok {
		return row
	}
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			row.Items = append(row.Items, OrderItemRow{})
			continue
		}
		row.Items = append(row.Items, OrderItemRow{
			Product:   rawString(m, "product"),
			Quantity:  rawString(m, "quantity"),
			UnitPrice: rawString(m, "unit_price"),
		})
	}
	return row
}

// rawString devuelve el primer alias presente en la fila, coercido a string
// y sin espacios en los bordes.
func rawString(raw map[string]any, aliases ...string) string {
	for _, key := range aliases {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s := coerceString(v); s != "" {
			return s
		}
	}
	return ""
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
