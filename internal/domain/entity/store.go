package entity

import "time"

// Store representa una tienda (supermercado) del usuario.
type Store struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
