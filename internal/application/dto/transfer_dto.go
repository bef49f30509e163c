package dto

// TransferRequest solicitud HTTP de copiar o mover productos entre tiendas.
type TransferRequest struct {
	Action        string   `json:"action" validate:"required,oneof=copy move"`
	ProductIDs    []string `json:"product_ids" validate:"required"`
	SourceStoreID string   `json:"source_store_id" validate:"required"`
	TargetStoreID string   `json:"target_store_id" validate:"required"`
}
