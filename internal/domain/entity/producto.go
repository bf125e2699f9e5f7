package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UmbralStockCritico stock máximo para que un producto aparezca en "por agotarse".
const UmbralStockCritico = 30

// Producto artículo del catálogo. El stock es autoritativo en la DB: el cliente
// nunca calcula deltas, solo refleja lo que el servidor devuelve.
type Producto struct {
	ID               int64
	Nombre           string
	CodigoBarras     string
	Num              string // IMEI / número de serie, opcional
	Color            string
	Bateria          string // porcentaje de salud de batería, opcional
	Condicion        string // "nuevo" | "usado" | etc.
	Categoria        string
	Stock            int
	Precio           decimal.Decimal
	PrecioCosto      decimal.Decimal
	PrecioRevendedor decimal.Decimal
	FotoURL          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PrecioPara devuelve el precio según el tipo ("venta" o "revendedor").
func (p *Producto) PrecioPara(tipoPrecio string) decimal.Decimal {
	if tipoPrecio == TipoPrecioRevendedor {
		return p.PrecioRevendedor
	}
	return p.Precio
}

// Tipos de precio admitidos en el carrito.
const (
	TipoPrecioVenta      = "venta"
	TipoPrecioRevendedor = "revendedor"
)
