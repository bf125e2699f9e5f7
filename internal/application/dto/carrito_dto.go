package dto

import "github.com/shopspring/decimal"

// AgregarItemRequest agrega una unidad de un producto de catálogo al carrito.
// El precio lo resuelve el servidor a partir de tipo_precio; el campo precio
// del cuerpo se acepta por compatibilidad pero no se usa para calcular.
type AgregarItemRequest struct {
	ProductoID int64           `json:"producto_id"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
	TipoPrecio string          `json:"tipo_precio"`
}

// AgregarManualRequest agrega una línea no atada al catálogo (ej. reparación).
// El precio viaja como string tal como lo emite el formulario.
type AgregarManualRequest struct {
	Nombre   string `json:"nombre"`
	Precio   string `json:"precio"`
	Cantidad int    `json:"cantidad"`
}

// CarritoItemResponse línea del carrito. El id es el del producto de catálogo
// o null para ventas manuales.
type CarritoItemResponse struct {
	ID         *int64          `json:"id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
	TipoPrecio string          `json:"tipo_precio"`
}

// CarritoResponse representación autoritativa del carrito del usuario.
// El total lo calcula el servidor; el cliente solo lo muestra.
type CarritoResponse struct {
	Items []CarritoItemResponse `json:"items"`
	Total decimal.Decimal       `json:"total"`
}
