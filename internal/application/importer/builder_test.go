package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testRefs() (*entity.ResolvedReference, *entity.ResolvedReference) {
	return &entity.ResolvedReference{Kind: entity.ReferenceCategory, Name: "Dairy", ID: "cat-1"},
		&entity.ResolvedReference{Kind: entity.ReferenceSupplier, Name: "Acme", ID: "sup-1"}
}

// Precedencia del precio exhibido: price > selling_price > cost_price > 0.
func TestBuildProduct_PrecedenciaDePrecio(t *testing.T) {
	cat, sup := testRefs()
	now := time.Now()

	cases := []struct {
		name   string
		fields ProductFields
		want   string
	}{
		{"price explícito gana", ProductFields{Price: dec("9.99"), SellingPrice: dec("5"), CostPrice: dec("3")}, "9.99"},
		{"selling_price si no hay price", ProductFields{SellingPrice: dec("5"), CostPrice: dec("3")}, "5"},
		{"cost_price como último recurso", ProductFields{CostPrice: dec("3")}, "3"},
		{"cero sin ningún precio", ProductFields{}, "0"},
	}
	for _, tc := range cases {
		p := buildProduct(&tc.fields, cat, sup, testStoreIDBuilder, now)
		assert.Equal(t, tc.want, p.Price.String(), tc.name)
	}
}

const testStoreIDBuilder = "store-9"

// El umbral de reorden por defecto es 5; la fila puede sobreescribirlo.
func TestBuildProduct_MinStockPorDefecto(t *testing.T) {
	cat, sup := testRefs()
	p := buildProduct(&ProductFields{}, cat, sup, testStoreIDBuilder, time.Now())
	assert.Equal(t, 5, p.MinStockLevel)

	three := 3
	p = buildProduct(&ProductFields{MinStock: &three}, cat, sup, testStoreIDBuilder, time.Now())
	assert.Equal(t, 3, p.MinStockLevel)
}

// La tienda es siempre la del llamador: una fila no elige su propia tienda.
func TestBuildProduct_TiendaDelLlamador(t *testing.T) {
	cat, sup := testRefs()
	p := buildProduct(&ProductFields{Name: "Milk"}, cat, sup, testStoreIDBuilder, time.Now())
	assert.Equal(t, testStoreIDBuilder, p.SupermarketID)
	assert.Empty(t, p.ID, "el ID lo asigna el backend al crear")
	assert.Equal(t, "cat-1", p.CategoryID)
	assert.Equal(t, "sup-1", p.SupplierID)
}

func TestBuildOrder_TotalCalculado(t *testing.T) {
	f := &OrderFields{
		ExternalOrderID: "ORD-1",
		Items: []entity.OrderItem{
			{ProductName: "Milk", Quantity: 2, UnitPrice: decimal.RequireFromString("2.5")},
			{ProductName: "Bread", Quantity: 3, UnitPrice: decimal.RequireFromString("1.2")},
		},
	}
	o := buildOrder(f, testStoreIDBuilder, time.Now())
	assert.Equal(t, "8.6", o.Total.String())
	assert.Equal(t, testStoreIDBuilder, o.SupermarketID)
}
