package views

import (
	"fmt"
	"io"
	"net/url"

	"github.com/franmdz/celupos/internal/application/dto"
)

// LinkWhatsApp arma el deep-link wa.me para consultar por un producto de la
// vidriera. El mensaje replica la ficha que ve el comprador.
func LinkWhatsApp(numero string, p dto.ProductoResponse) string {
	precio := "Consultar"
	if p.Precio.IsPositive() {
		precio = "$" + p.Precio.StringFixed(2)
	}
	mensaje := fmt.Sprintf(
		"Hola, quiero consultar por este producto:\n\n%s\nColor: %s\nBatería: %s\nCondición: %s\nPrecio: %s",
		p.Nombre, oGuion(p.Color), oGuion(p.Bateria), oGuion(p.Condicion), precio,
	)
	return "https://wa.me/" + numero + "?text=" + url.QueryEscape(mensaje)
}

func oGuion(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RenderTienda muestra la vidriera pública con el link de consulta por producto.
func RenderTienda(w io.Writer, resp *dto.TiendaResponse, whatsapp string) {
	fmt.Fprintf(w, "categorías: %v\n", resp.Categorias)
	tw := nuevaTabla(w)
	fmt.Fprintln(tw, "NOMBRE\tCATEGORÍA\tCOND\tPRECIO")
	for _, p := range resp.Productos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%s\n", p.Nombre, p.Categoria, p.Condicion, p.Precio.StringFixed(2))
	}
	tw.Flush()
	if whatsapp != "" && len(resp.Productos) > 0 {
		fmt.Fprintf(w, "consultar el primero: %s\n", LinkWhatsApp(whatsapp, resp.Productos[0]))
	}
}
