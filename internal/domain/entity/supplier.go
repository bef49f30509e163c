package entity

import "time"

// Supplier representa un proveedor del backend.
type Supplier struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
