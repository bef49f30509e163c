package dto

// StoreResponse tienda del usuario para los selectores de la UI.
type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
