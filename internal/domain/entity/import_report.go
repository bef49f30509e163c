package entity

import "time"

// Tipos de referencia resolubles por nombre.
const (
	ReferenceCategory = "category"
	ReferenceSupplier = "supplier"
)

// ResolvedReference resultado de resolver un nombre libre (categoría o
// proveedor) a su ID canónico. Created marca las referencias creadas durante
// el lote; se reportan al usuario al final.
type ResolvedReference struct {
	Kind    string `json:"kind"` // ReferenceCategory | ReferenceSupplier
	Name    string `json:"name"`
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

// RowResult desenlace de una fila del lote. Entity lleva el payload creado
// (producto u orden) en filas exitosas y queda nil cuando la fila falló;
// Error queda vacío cuando tuvo éxito.
type RowResult struct {
	RowIndex int    `json:"row_index"` // 1-based, orden de entrada
	Success  bool   `json:"success"`
	EntityID string `json:"entity_id,omitempty"`
	Entity   any    `json:"entity,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ImportReport resumen consolidado de un lote de importación. Los contadores
// se derivan de Results (Successful + Failed == Total siempre).
type ImportReport struct {
	ID            string              `json:"id,omitempty"`
	Kind          string              `json:"kind"` // "product" | "order"
	Total         int                 `json:"total"`
	Successful    int                 `json:"successful"`
	Failed        int                 `json:"failed"`
	NewCategories []ResolvedReference `json:"new_categories"`
	NewSuppliers  []ResolvedReference `json:"new_suppliers"`
	Results       []RowResult         `json:"results"`
	CreatedAt     time.Time           `json:"created_at,omitempty"`
}

// ImportReportSummary fila del historial de importaciones (sin el detalle por fila).
type ImportReportSummary struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Total      int       `json:"total"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	CreatedAt  time.Time `json:"created_at"`
}
