package views

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/dto"
)

// TotalGeneral suma los netos por método de pago, egresos incluidos (pueden
// dejar un método en negativo).
func TotalGeneral(netoPorPago map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, neto := range netoPorPago {
		total = total.Add(neto)
	}
	return total
}

// RenderCaja muestra el cierre de caja del rango: neto por método y total general.
func RenderCaja(w io.Writer, resp *dto.CajaResponse) {
	fmt.Fprintf(w, "caja del %s al %s\n", resp.FechaDesde, resp.FechaHasta)

	metodos := make([]string, 0, len(resp.NetoPorPago))
	for metodo := range resp.NetoPorPago {
		metodos = append(metodos, metodo)
	}
	sort.Strings(metodos)

	tw := nuevaTabla(w)
	fmt.Fprintln(tw, "MÉTODO\tNETO")
	for _, metodo := range metodos {
		fmt.Fprintf(tw, "%s\t$%s\n", metodo, resp.NetoPorPago[metodo].StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintf(w, "TOTAL GENERAL: $%s\n", TotalGeneral(resp.NetoPorPago).StringFixed(2))
}

// RenderDashboard muestra los KPIs del rango.
func RenderDashboard(w io.Writer, resp *dto.DashboardResponse) {
	tw := nuevaTabla(w)
	fmt.Fprintf(tw, "ventas\t$%s\n", resp.TotalVentas.StringFixed(2))
	fmt.Fprintf(tw, "costo\t$%s\n", resp.TotalCosto.StringFixed(2))
	fmt.Fprintf(tw, "egresos\t$%s\n", resp.TotalEgresos.StringFixed(2))
	fmt.Fprintf(tw, "ganancia\t$%s\n", resp.Ganancia.StringFixed(2))
	fmt.Fprintf(tw, "reparaciones\t$%s\n", resp.TotalVentasReparaciones.StringFixed(2))
	tw.Flush()
	if len(resp.DistribucionVentas) > 0 {
		fmt.Fprintln(w, "distribución:")
		for _, d := range resp.DistribucionVentas {
			fmt.Fprintf(w, "  %s: $%s\n", d.Tipo, d.Total.StringFixed(2))
		}
	}
}

// RenderTopProductos muestra el ranking de más vendidos con su porcentaje.
func RenderTopProductos(w io.Writer, resp *dto.TopProductosResponse) {
	fmt.Fprintf(w, "unidades vendidas (histórico): %d\n", resp.TotalVentas)
	tw := nuevaTabla(w)
	fmt.Fprintln(tw, "#\tPRODUCTO\tPRECIO\tUNIDADES\t%")
	for i, p := range resp.Productos {
		fmt.Fprintf(tw, "%d\t%s\t$%s\t%d\t%s%%\n",
			i+1, p.Nombre, p.Precio.StringFixed(2), p.Unidades, p.Porcentaje.StringFixed(2))
	}
	tw.Flush()
}
