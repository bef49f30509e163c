package dto

// ImportOptionsRequest flags de creación de referencias faltantes.
// Ambos flags se asumen true si el cliente no los envía.
type ImportOptionsRequest struct {
	CreateMissingCategories *bool `json:"create_missing_categories"`
	CreateMissingSuppliers  *bool `json:"create_missing_suppliers"`
}

// ImportProductsRequest lote de filas de producto a importar.
// Las filas llegan planas (columna -> valor crudo), tal como las produce el
// parser de hoja de cálculo o el payload JSON del cliente.
type ImportProductsRequest struct {
	StoreID string               `json:"store_id" validate:"required"`
	Options ImportOptionsRequest `json:"options"`
	Rows    []map[string]any     `json:"rows" validate:"required"`
}

// ImportOrdersRequest lote de órdenes a importar.
type ImportOrdersRequest struct {
	StoreID string               `json:"store_id" validate:"required"`
	Options ImportOptionsRequest `json:"options"`
	Orders  []map[string]any     `json:"orders" validate:"required"`
}
