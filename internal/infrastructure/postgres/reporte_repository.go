package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de lectura para caja, dashboard y top de ventas.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// NetoPorPago ventas no anuladas menos egresos, agrupado por método de pago.
// Los egresos entran como montos negativos al neto.
func (r *ReporteRepo) NetoPorPago(ctx context.Context, desde, hasta time.Time) ([]repository.NetoPorPagoResult, error) {
	query := `
		SELECT tipo_pago, COALESCE(SUM(neto), 0) AS neto
		FROM (
			SELECT tipo_pago, total AS neto
			FROM ventas WHERE NOT anulada AND fecha >= $1 AND fecha <= $2
			UNION ALL
			SELECT tipo_pago, -monto AS neto
			FROM egresos WHERE fecha >= $1 AND fecha <= $2
		) movimientos
		GROUP BY tipo_pago
		ORDER BY tipo_pago`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("neto por pago: %w", err)
	}
	defer rows.Close()
	var list []repository.NetoPorPagoResult
	for rows.Next() {
		var n repository.NetoPorPagoResult
		if err := rows.Scan(&n.TipoPago, &n.Neto); err != nil {
			return nil, fmt.Errorf("scan neto por pago: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// VentasResumen agregados de ventas del rango. El costo usa el precio_costo
// actual del producto; renglones de productos borrados cuentan costo cero.
func (r *ReporteRepo) VentasResumen(ctx context.Context, desde, hasta time.Time) (*repository.VentasResumenResult, error) {
	query := `
		SELECT
			COALESCE(SUM(v.total), 0) AS total_ventas,
			COALESCE(SUM(CASE WHEN v.producto_id IS NOT NULL THEN p.precio_costo * v.cantidad END), 0) AS total_costo,
			COALESCE(SUM(CASE WHEN v.manual THEN v.total END), 0) AS total_reparaciones
		FROM ventas v
		LEFT JOIN productos p ON p.id = v.producto_id
		WHERE NOT v.anulada AND v.fecha >= $1 AND v.fecha <= $2`
	var out repository.VentasResumenResult
	err := r.q.QueryRow(ctx, query, desde, hasta).Scan(
		&out.TotalVentas, &out.TotalCosto, &out.TotalReparaciones,
	)
	if err != nil {
		return nil, fmt.Errorf("ventas resumen: %w", err)
	}
	return &out, nil
}

// TotalEgresos suma de egresos del rango.
func (r *ReporteRepo) TotalEgresos(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(monto), 0) FROM egresos WHERE fecha >= $1 AND fecha <= $2`,
		desde, hasta,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total egresos: %w", err)
	}
	return total, nil
}

// TopProductos unidades vendidas por producto de catálogo, descendente.
func (r *ReporteRepo) TopProductos(ctx context.Context, limit int) ([]repository.TopProductoResult, error) {
	query := `
		SELECT v.producto, MAX(v.precio_unitario) AS precio, SUM(v.cantidad)::int AS unidades
		FROM ventas v
		WHERE NOT v.anulada AND NOT v.manual
		GROUP BY v.producto
		ORDER BY unidades DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductoResult
	for rows.Next() {
		var t repository.TopProductoResult
		if err := rows.Scan(&t.Nombre, &t.Precio, &t.Unidades); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
