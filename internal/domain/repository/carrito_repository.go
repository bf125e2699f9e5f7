package repository

import "github.com/franmdz/celupos/internal/domain/entity"

// CarritoRepository puerto de persistencia del carrito por usuario.
// El carrito es el recurso de sesión del flujo de ventas: cada mutación se
// persiste y el cliente relee el estado completo después de escribir.
type CarritoRepository interface {
	ListByUsuario(usuario string) ([]*entity.CarritoItem, error)
	Add(item *entity.CarritoItem) error
	// IncrementCantidad suma cantidad a una línea existente del mismo producto
	// y tipo de precio. Devuelve false si no existe tal línea.
	IncrementCantidad(usuario string, productoID int64, tipoPrecio string, cantidad int) (bool, error)
	Vaciar(usuario string) error
}
