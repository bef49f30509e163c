package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrBackendUnavailable = errors.New("backend no disponible")
)

// ValidationError falla de validación de una fila. Siempre es local a la fila:
// se registra en el RowResult y nunca aborta el lote.
type ValidationError struct {
	Fields []string // campos rechazados, en orden de columna
}

func (e *ValidationError) Error() string {
	return "validation: " + strings.Join(e.Fields, ", ")
}

// ResolutionError falla al resolver una referencia (categoría o proveedor):
// ni la búsqueda ni la creación en el backend produjeron un ID.
type ResolutionError struct {
	Kind string // "category" | "supplier"
	Name string
	Err  error // causa del backend; nil si la creación estaba deshabilitada
}

func (e *ResolutionError) Error() string {
	kind := "Category"
	if e.Kind == "supplier" {
		kind = "Supplier"
	}
	msg := fmt.Sprintf("%s not found and could not be created: %s", kind, e.Name)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// CreationError el backend rechazó el payload final de la entidad
// (p. ej. conflicto de unicidad). Local a la fila.
type CreationError struct {
	Kind string // "product" | "order"
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("creation (%s): %v", e.Kind, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// InvalidTransferError violación de precondición en una transferencia entre
// tiendas; se detecta antes de cualquier llamada al backend.
type InvalidTransferError struct {
	Reason string
}

func (e *InvalidTransferError) Error() string {
	return "transferencia inválida: " + e.Reason
}
