package entity

import "github.com/shopspring/decimal"

// CarritoItem línea pendiente de una venta en curso. El carrito vive en el
// servidor, asociado al usuario autenticado; el cliente lo trata como una
// caché que se relee después de cada mutación.
type CarritoItem struct {
	ID         int64
	Usuario    string
	ProductoID *int64 // nil para ventas manuales (ítems sin producto de catálogo)
	Nombre     string
	Precio     decimal.Decimal
	Cantidad   int
	TipoPrecio string // "venta" | "revendedor" | "manual"
}

// Subtotal precio × cantidad de la línea.
func (i *CarritoItem) Subtotal() decimal.Decimal {
	return i.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// EsManual indica si la línea no está atada a un producto del catálogo.
func (i *CarritoItem) EsManual() bool {
	return i.ProductoID == nil
}

// TotalCarrito suma de subtotales de todas las líneas.
func TotalCarrito(items []*CarritoItem) decimal.Decimal {
	total := decimal.Zero
	for _, i := range items {
		total = total.Add(i.Subtotal())
	}
	return total
}
