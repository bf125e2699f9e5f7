package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaCols = `id, grupo_id, producto_id, producto, cantidad, num, precio_unitario,
	tipo_precio, total, fecha, tipo_pago, dni_cliente, manual, anulada`

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create inserta un renglón de venta y completa su ID.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (grupo_id, producto_id, producto, cantidad, num, precio_unitario,
			tipo_precio, total, fecha, tipo_pago, dni_cliente, manual, anulada)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.GrupoID, v.ProductoID, v.Producto, v.Cantidad, v.Num, v.PrecioUnitario,
		v.TipoPrecio, v.Total, v.Fecha, v.TipoPago, v.DNICliente, v.Manual, v.Anulada,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene un renglón por ID. Devuelve nil si no existe.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE id = $1`
	v, err := scanVenta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// ListByFecha renglones del rango [desde, hasta], más recientes primero.
func (r *VentaRepo) ListByFecha(desde, hasta time.Time) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas
		WHERE fecha >= $1 AND fecha <= $2 ORDER BY fecha DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	return collectVentas(rows)
}

// ListByGrupo renglones de un mismo ticket, en orden de inserción.
func (r *VentaRepo) ListByGrupo(grupoID string) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE grupo_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("list ventas por grupo: %w", err)
	}
	defer rows.Close()
	return collectVentas(rows)
}

// MarcarAnulada marca el renglón como anulado.
func (r *VentaRepo) MarcarAnulada(id int64) error {
	_, err := r.q.Exec(context.Background(), `UPDATE ventas SET anulada = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("anular venta: %w", err)
	}
	return nil
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	err := row.Scan(
		&v.ID, &v.GrupoID, &v.ProductoID, &v.Producto, &v.Cantidad, &v.Num, &v.PrecioUnitario,
		&v.TipoPrecio, &v.Total, &v.Fecha, &v.TipoPago, &v.DNICliente, &v.Manual, &v.Anulada,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVentas(rows pgx.Rows) ([]*entity.Venta, error) {
	var list []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
