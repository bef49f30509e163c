package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto desde el formulario.
// StoreIDs con más de una tienda activa "agregar a todas mis tiendas": la
// primera es la canónica y las demás reciben copias.
type CreateProductRequest struct {
	StoreIDs      []string        `json:"store_ids" validate:"required,min=1"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID    string          `json:"category_id" validate:"required"`
	SupplierID    string          `json:"supplier_id" validate:"required"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStockLevel *int            `json:"min_stock_level"`
	Certified     *bool           `json:"certified"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
	Brand         string          `json:"brand"`
	Weight        string          `json:"weight"`
	Origin        string          `json:"origin"`
	Barcode       string          `json:"barcode"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID    *string          `json:"category_id"`
	SupplierID    *string          `json:"supplier_id"`
	Quantity      *int64           `json:"quantity"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	MinStockLevel *int             `json:"min_stock_level"`
	Certified     *bool            `json:"certified"`
	ExpiryDate    *time.Time       `json:"expiry_date"`
	Brand         *string          `json:"brand"`
	Weight        *string          `json:"weight"`
	Origin        *string          `json:"origin"`
	Barcode       *string          `json:"barcode"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SupermarketID string          `json:"supermarket_id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	SupplierID    string          `json:"supplier_id"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStockLevel int             `json:"min_stock_level"`
	Certified     bool            `json:"certified"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Weight        string          `json:"weight,omitempty"`
	Origin        string          `json:"origin,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
	Description   string          `json:"description,omitempty"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos de una tienda.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// LabelsRequest entrada para imprimir etiquetas de góndola.
type LabelsRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1"`
	Copies     int      `json:"copies"`
}
