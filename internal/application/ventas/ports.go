package ventas

import (
	"context"

	"github.com/franmdz/celupos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el registro y la anulación de ventas sean atómicos:
// o se descuenta el stock, se insertan los renglones y se vacía el carrito, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		carritoRepo repository.CarritoRepository,
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
