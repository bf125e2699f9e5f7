package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago admitidos.
const (
	PagoEfectivo      = "efectivo"
	PagoDebito        = "debito"
	PagoCredito       = "credito"
	PagoTransferencia = "transferencia"
)

// Venta renglón histórico de una venta confirmada. El registro de una venta
// genera un renglón por línea del carrito; GrupoID agrupa los renglones que
// se confirmaron juntos (mismo ticket).
type Venta struct {
	ID             int64
	GrupoID        string // uuid compartido por los renglones del mismo ticket
	ProductoID     *int64 // nil cuando el renglón nació de una venta manual
	Producto       string
	Cantidad       int
	Num            *string
	PrecioUnitario decimal.Decimal
	TipoPrecio     string
	Total          decimal.Decimal
	Fecha          time.Time
	TipoPago       string
	DNICliente     string
	Manual         bool
	Anulada        bool
}

// EsMetodoPago valida el discriminador de método de pago.
func EsMetodoPago(s string) bool {
	switch s {
	case PagoEfectivo, PagoDebito, PagoCredito, PagoTransferencia:
		return true
	}
	return false
}
