package postgres

import (
	"context"
	"fmt"

	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

var _ repository.CarritoRepository = (*CarritoRepo)(nil)

// CarritoRepo implementación de CarritoRepository sobre PostgreSQL (usable con pool o tx).
type CarritoRepo struct {
	q Querier
}

// NewCarritoRepository construye el adaptador del carrito. Pasar pool o tx (Querier).
func NewCarritoRepository(q Querier) *CarritoRepo {
	return &CarritoRepo{q: q}
}

// ListByUsuario líneas pendientes del usuario en orden de inserción.
func (r *CarritoRepo) ListByUsuario(usuario string) ([]*entity.CarritoItem, error) {
	query := `
		SELECT id, usuario, producto_id, nombre, precio, cantidad, tipo_precio
		FROM carrito_items WHERE usuario = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, usuario)
	if err != nil {
		return nil, fmt.Errorf("list carrito: %w", err)
	}
	defer rows.Close()
	var list []*entity.CarritoItem
	for rows.Next() {
		var i entity.CarritoItem
		if err := rows.Scan(&i.ID, &i.Usuario, &i.ProductoID, &i.Nombre, &i.Precio, &i.Cantidad, &i.TipoPrecio); err != nil {
			return nil, fmt.Errorf("scan carrito item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Add inserta una línea nueva y completa su ID.
func (r *CarritoRepo) Add(item *entity.CarritoItem) error {
	query := `
		INSERT INTO carrito_items (usuario, producto_id, nombre, precio, cantidad, tipo_precio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Usuario, item.ProductoID, item.Nombre, item.Precio, item.Cantidad, item.TipoPrecio,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert carrito item: %w", err)
	}
	return nil
}

// IncrementCantidad suma cantidad a la línea del mismo producto y tipo de
// precio. Devuelve false si no había línea que incrementar.
func (r *CarritoRepo) IncrementCantidad(usuario string, productoID int64, tipoPrecio string, cantidad int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE carrito_items SET cantidad = cantidad + $4
		 WHERE usuario = $1 AND producto_id = $2 AND tipo_precio = $3`,
		usuario, productoID, tipoPrecio, cantidad,
	)
	if err != nil {
		return false, fmt.Errorf("increment carrito item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Vaciar borra todas las líneas del usuario.
func (r *CarritoRepo) Vaciar(usuario string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM carrito_items WHERE usuario = $1`, usuario)
	if err != nil {
		return fmt.Errorf("vaciar carrito: %w", err)
	}
	return nil
}
