package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// NetoPorPagoResult neto de un método de pago en un rango: ventas menos egresos.
type NetoPorPagoResult struct {
	TipoPago string
	Neto     decimal.Decimal
}

// VentasResumenResult agregados crudos de ventas para el dashboard.
type VentasResumenResult struct {
	TotalVentas       decimal.Decimal // suma de totales de renglones no anulados
	TotalCosto        decimal.Decimal // precio_costo × cantidad de renglones de catálogo
	TotalReparaciones decimal.Decimal // suma de renglones manuales (servicios/reparaciones)
}

// TopProductoResult unidades acumuladas por producto de catálogo.
type TopProductoResult struct {
	Nombre   string
	Precio   decimal.Decimal
	Unidades int
}

// ReporteRepository consultas de lectura para caja, dashboard y top de ventas.
// Las implementaciones son read-only (no modifican datos).
type ReporteRepository interface {
	// NetoPorPago devuelve, por método de pago, ventas no anuladas menos
	// egresos dentro del rango [desde, hasta].
	NetoPorPago(ctx context.Context, desde, hasta time.Time) ([]NetoPorPagoResult, error)

	// VentasResumen devuelve los agregados de ventas del rango. Usa COALESCE
	// para devolver cero si no hay ventas en el período.
	VentasResumen(ctx context.Context, desde, hasta time.Time) (*VentasResumenResult, error)

	// TotalEgresos suma de egresos del rango.
	TotalEgresos(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// TopProductos productos de catálogo ordenados por unidades vendidas
	// (no anuladas), descendente.
	TopProductos(ctx context.Context, limit int) ([]TopProductoResult, error)
}
