package entity

// Acciones de una transferencia entre tiendas.
const (
	TransferActionCopy = "copy"
	TransferActionMove = "move"
)

// TransferRequest solicitud de copiar o mover un conjunto de productos entre
// dos tiendas. Se valida completa antes de tocar el backend.
type TransferRequest struct {
	Action        string   `json:"action"` // TransferActionCopy | TransferActionMove
	ProductIDs    []string `json:"product_ids"`
	SourceStoreID string   `json:"source_store_id"`
	TargetStoreID string   `json:"target_store_id"`
}

// TransferItemResult desenlace por producto de una transferencia.
// NewProductID solo aplica en copias (el movimiento conserva el ID original).
type TransferItemResult struct {
	ProductID    string `json:"product_id"`
	Success      bool   `json:"success"`
	NewProductID string `json:"new_product_id,omitempty"`
	Error        string `json:"error,omitempty"`
}

// TransferResult resumen de una transferencia; mismo esquema best-effort que
// el ImportReport (una falla no revierte las demás).
type TransferResult struct {
	Action     string               `json:"action"`
	Total      int                  `json:"total"`
	Successful int                  `json:"successful"`
	Failed     int                  `json:"failed"`
	Items      []TransferItemResult `json:"items"`
}
