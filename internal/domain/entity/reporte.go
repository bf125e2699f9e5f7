package entity

import "github.com/shopspring/decimal"

// ResumenCaja neto por método de pago para un rango de fechas:
// ventas no anuladas menos egresos, agrupado por tipo de pago.
type ResumenCaja struct {
	FechaDesde  string
	FechaHasta  string
	NetoPorPago map[string]decimal.Decimal
}

// TotalGeneral suma de los netos de todos los métodos de pago.
func (r *ResumenCaja) TotalGeneral() decimal.Decimal {
	total := decimal.Zero
	for _, v := range r.NetoPorPago {
		total = total.Add(v)
	}
	return total
}

// DistribucionVenta total vendido por tipo (productos vs reparaciones).
type DistribucionVenta struct {
	Tipo  string
	Total decimal.Decimal
}

// ResumenDashboard KPIs agregados para un rango de fechas.
type ResumenDashboard struct {
	TotalVentas             decimal.Decimal
	TotalCosto              decimal.Decimal
	TotalEgresos            decimal.Decimal
	Ganancia                decimal.Decimal
	TotalVentasReparaciones decimal.Decimal
	Distribucion            []DistribucionVenta
}

// TopProducto producto con unidades vendidas acumuladas.
type TopProducto struct {
	Nombre   string
	Precio   decimal.Decimal
	Unidades int
}
