// Package views renderiza las pantallas del punto de venta en terminal.
// Ninguna vista calcula datos de negocio: formatea lo que el servidor manda.
package views

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/franmdz/celupos/internal/application/dto"
)

func nuevaTabla(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// RenderProductos muestra una página del catálogo con su posición. La columna
// de costo solo se imprime para administradores.
func RenderProductos(w io.Writer, lista *dto.ProductoListResponse, pag Pagina, admin bool) {
	tw := nuevaTabla(w)
	encabezado := "ID\tNOMBRE\tNUM\tCATEGORÍA\tCOND\tSTOCK\tPRECIO\tREVENDEDOR"
	if admin {
		encabezado += "\tCOSTO"
	}
	fmt.Fprintln(tw, encabezado)
	for _, p := range lista.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t$%s\t$%s",
			p.ID, p.Nombre, p.Num, p.Categoria, p.Condicion,
			p.Stock, p.Precio.StringFixed(2), p.PrecioRevendedor.StringFixed(2))
		if admin {
			fmt.Fprintf(tw, "\t$%s", p.PrecioCosto.StringFixed(2))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	fmt.Fprintf(w, "página %d de %d (%d productos)\n", pag.Actual, pag.TotalPaginas(), lista.Total)
}

// RenderPorAgotarse muestra los productos con stock crítico.
func RenderPorAgotarse(w io.Writer, resp *dto.PorAgotarseResponse, pag Pagina) {
	tw := nuevaTabla(w)
	fmt.Fprintln(tw, "ID\tNOMBRE\tNUM\tSTOCK")
	for _, p := range resp.Productos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Nombre, p.Num, p.Stock)
	}
	tw.Flush()
	fmt.Fprintf(w, "página %d de %d (%d por agotarse)\n", pag.Actual, pag.TotalPaginas(), resp.Total)
}

// RenderCarrito muestra las líneas pendientes y el total del servidor.
func RenderCarrito(w io.Writer, carrito dto.CarritoResponse) {
	if len(carrito.Items) == 0 {
		fmt.Fprintln(w, "el carrito está vacío")
		return
	}
	tw := nuevaTabla(w)
	fmt.Fprintln(tw, "#\tDETALLE\tCANT\tPRECIO\tTIPO")
	for i, it := range carrito.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t$%s\t%s\n",
			i+1, it.Nombre, it.Cantidad, it.Precio.StringFixed(2), it.TipoPrecio)
	}
	tw.Flush()
	fmt.Fprintf(w, "TOTAL: $%s\n", carrito.Total.StringFixed(2))
}

// RenderTransacciones muestra el historial partido en catálogo y manuales.
func RenderTransacciones(w io.Writer, resp *dto.TransaccionesResponse) {
	fmt.Fprintf(w, "ventas de catálogo (%d)\n", len(resp.Ventas))
	renderVentas(w, resp.Ventas)
	fmt.Fprintf(w, "\nventas manuales (%d)\n", len(resp.Manuales))
	renderVentas(w, resp.Manuales)
}

func renderVentas(w io.Writer, ventas []dto.VentaResponse) {
	if len(ventas) == 0 {
		fmt.Fprintln(w, "  (sin movimientos)")
		return
	}
	tw := nuevaTabla(w)
	fmt.Fprintln(tw, "ID\tFECHA\tPRODUCTO\tCANT\tP.UNIT\tTOTAL\tPAGO\tDNI\tESTADO")
	for _, v := range ventas {
		estado := ""
		if v.Anulada {
			estado = "ANULADA"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t$%s\t$%s\t%s\t%s\t%s\n",
			v.ID, v.Fecha, v.Producto, v.Cantidad,
			v.PrecioUnitario.StringFixed(2), v.Total.StringFixed(2),
			v.TipoPago, v.DNICliente, estado)
	}
	tw.Flush()
}

// RenderEgresos muestra los gastos, más recientes primero.
func RenderEgresos(w io.Writer, egresos []dto.EgresoResponse) {
	if len(egresos) == 0 {
		fmt.Fprintln(w, "sin egresos registrados")
		return
	}
	tw := nuevaTabla(w)
	fmt.Fprintln(tw, "ID\tFECHA\tMONTO\tDESCRIPCIÓN\tPAGO")
	for _, e := range egresos {
		fmt.Fprintf(tw, "%d\t%s\t$%s\t%s\t%s\n",
			e.ID, e.Fecha, e.Monto.StringFixed(2), e.Descripcion, e.TipoPago)
	}
	tw.Flush()
}
