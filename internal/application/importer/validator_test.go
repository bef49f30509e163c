package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductRow() ProductRow {
	return ProductRow{
		Name:         "Milk",
		Category:     "Dairy",
		Supplier:     "Acme",
		Quantity:     "10",
		SellingPrice: "2.5",
		ExpiryDate:   "2025-01-01",
	}
}

func TestValidateProduct_FilaValida(t *testing.T) {
	f, verr := validateProduct(validProductRow())
	require.Nil(t, verr)
	assert.Equal(t, int64(10), f.Quantity)
	require.NotNil(t, f.SellingPrice)
	assert.Equal(t, "2.5", f.SellingPrice.String())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), f.ExpiryDate)
	assert.True(t, f.Certified, "la certificación por defecto es true")
}

// El error lista todos los campos rechazados, no solo el primero.
func TestValidateProduct_ListaTodosLosCamposMalos(t *testing.T) {
	_, verr := validateProduct(ProductRow{Quantity: "-3", ExpiryDate: "ayer"})
	require.NotNil(t, verr)
	assert.ElementsMatch(t, verr.Fields, []string{
		"name", "category", "supplier", "quantity", "cost_price/selling_price", "expiry_date",
	})
	assert.Contains(t, verr.Error(), "validation:")
}

// Basta con uno de cost_price/selling_price; ambos ausentes es rechazo.
func TestValidateProduct_PrecioRequerido(t *testing.T) {
	row := validProductRow()
	row.SellingPrice = ""
	_, verr := validateProduct(row)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "cost_price/selling_price")

	row.CostPrice = "1.10"
	f, verr := validateProduct(row)
	require.Nil(t, verr)
	require.NotNil(t, f.CostPrice)
	assert.Nil(t, f.SellingPrice)
}

// Un precio no positivo cuenta como ausente.
func TestValidateProduct_PrecioNoPositivoSeDescarta(t *testing.T) {
	row := validProductRow()
	row.SellingPrice = "-2.5"
	_, verr := validateProduct(row)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "cost_price/selling_price")
}

func TestValidateProduct_FormatosDeFecha(t *testing.T) {
	for _, raw := range []string{"2025-01-01", "2025-01-01T00:00:00Z", "01/01/2025"} {
		row := validProductRow()
		row.ExpiryDate = raw
		_, verr := validateProduct(row)
		assert.Nil(t, verr, "el formato %q debe aceptarse", raw)
	}
}

// La certificación tolera el tipado de celdas de hoja de cálculo.
func TestValidateProduct_CertificacionCoercion(t *testing.T) {
	cases := map[string]bool{
		"":      true,
		"true":  true,
		"sí":    true,
		"false": false,
		"FALSE": false,
		"False": false,
	}
	for raw, want := range cases {
		row := validProductRow()
		row.Certified = raw
		f, verr := validateProduct(row)
		require.Nil(t, verr)
		assert.Equal(t, want, f.Certified, "certified=%q", raw)
	}
}

// Los alias category_name/supplier_name se normalizan antes de validar.
func TestProductRowFromMap_Alias(t *testing.T) {
	row := ProductRowFromMap(CandidateRow{
		"name":          "Milk",
		"category_name": "Dairy",
		"supplier_name": "Acme",
		"quantity":      float64(10),
		"selling_price": 2.5,
		"expiry_date":   "2025-01-01",
	})
	assert.Equal(t, "Dairy", row.Category)
	assert.Equal(t, "Acme", row.Supplier)
	assert.Equal(t, "10", row.Quantity, "las celdas numéricas se coercen a string")

	_, verr := validateProduct(row)
	assert.Nil(t, verr)
}

func TestValidateOrder_SinItems(t *testing.T) {
	_, verr := validateOrder(OrderRow{CustomerName: "Ana"})
	require.NotNil(t, verr)
	assert.Equal(t, []string{"items"}, verr.Fields)
}

func TestValidateOrder_CamposPorItem(t *testing.T) {
	row := OrderRow{Items: []OrderItemRow{
		{Product: "Milk", Quantity: "2", UnitPrice: "2.5"},
		{Product: "", Quantity: "0", UnitPrice: "-1"},
	}}
	_, verr := validateOrder(row)
	require.NotNil(t, verr)
	assert.ElementsMatch(t, verr.Fields, []string{
		"items[1].product", "items[1].quantity", "items[1].unit_price",
	})
}
