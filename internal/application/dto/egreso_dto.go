package dto

import "github.com/shopspring/decimal"

// CrearEgresoRequest alta de egreso. Fecha en formato YYYY-MM-DD.
type CrearEgresoRequest struct {
	Fecha       string          `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	TipoPago    string          `json:"tipo_pago"`
}

// EgresoResponse egreso tal como lo consume el listado.
type EgresoResponse struct {
	ID          int64           `json:"id"`
	Fecha       string          `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	TipoPago    string          `json:"tipo_pago"`
}
