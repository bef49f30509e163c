package entity

import "time"

// Category representa una categoría de productos del backend.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
