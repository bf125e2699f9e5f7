package dto

import "github.com/shopspring/decimal"

// CajaResponse neto por método de pago en el rango pedido.
type CajaResponse struct {
	FechaDesde  string                     `json:"fecha_desde"`
	FechaHasta  string                     `json:"fecha_hasta"`
	NetoPorPago map[string]decimal.Decimal `json:"neto_por_pago"`
}

// DistribucionVentaResponse total vendido por tipo (productos / reparaciones).
type DistribucionVentaResponse struct {
	Tipo  string          `json:"tipo"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse KPIs del rango pedido.
type DashboardResponse struct {
	TotalVentas             decimal.Decimal             `json:"total_ventas"`
	TotalCosto              decimal.Decimal             `json:"total_costo"`
	TotalEgresos            decimal.Decimal             `json:"total_egresos"`
	Ganancia                decimal.Decimal             `json:"ganancia"`
	TotalVentasReparaciones decimal.Decimal             `json:"total_ventas_reparaciones"`
	DistribucionVentas      []DistribucionVentaResponse `json:"distribucion_ventas"`
}

// TopProductoResponse producto del ranking de más vendidos.
type TopProductoResponse struct {
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Unidades   int             `json:"unidades"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// TopProductosResponse ranking completo. TotalVentas son unidades acumuladas.
type TopProductosResponse struct {
	TotalVentas int                   `json:"total_ventas"`
	Productos   []TopProductoResponse `json:"productos"`
}

// TiendaResponse catálogo público más las categorías para el filtro.
type TiendaResponse struct {
	Productos  []ProductoResponse `json:"productos"`
	Categorias []string           `json:"categorias"`
}
