package dto

import "github.com/shopspring/decimal"

// RegistrarVentaRequest confirma el carrito pendiente como venta.
type RegistrarVentaRequest struct {
	DNICliente string `json:"dni_cliente"`
	MetodoPago string `json:"metodo_pago"`
}

// RegistrarVentaResponse resultado del registro.
type RegistrarVentaResponse struct {
	GrupoID   string          `json:"grupo_id"`
	Renglones int             `json:"renglones"`
	Total     decimal.Decimal `json:"total"`
}

// VentaResponse renglón histórico de venta.
type VentaResponse struct {
	ID             int64           `json:"id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	Num            *string         `json:"num"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	TipoPrecio     string          `json:"tipo_precio"`
	Total          decimal.Decimal `json:"total"`
	Fecha          string          `json:"fecha"`
	TipoPago       string          `json:"tipo_pago"`
	DNICliente     string          `json:"dni_cliente"`
	Anulada        bool            `json:"anulada"`
}

// TransaccionesResponse historial partido en ventas de catálogo y manuales.
type TransaccionesResponse struct {
	Ventas   []VentaResponse `json:"ventas"`
	Manuales []VentaResponse `json:"manuales"`
}
