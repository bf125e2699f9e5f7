// Package excel genera las planillas descargables del panel: stock completo
// y transacciones por rango de fechas.
package excel

import (
	"bytes"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/franmdz/celupos/internal/domain/entity"
)

// Exporter construye planillas xlsx en memoria.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportarStock una fila por producto del catálogo con stock y precios.
func (e *Exporter) ExportarStock(productos []*entity.Producto) ([]byte, error) {
	f := excelize.NewFile()
	const hoja = "Stock"
	f.SetSheetName("Sheet1", hoja)

	encabezados := []string{"ID", "Nombre", "Código de barras", "Categoría", "Condición", "Stock", "Precio", "Precio costo", "Precio revendedor"}
	for i, h := range encabezados {
		f.SetCellValue(hoja, celda(i, 1), h)
	}
	for fila, p := range productos {
		r := fila + 2
		f.SetCellValue(hoja, celda(0, r), p.ID)
		f.SetCellValue(hoja, celda(1, r), p.Nombre)
		f.SetCellValue(hoja, celda(2, r), p.CodigoBarras)
		f.SetCellValue(hoja, celda(3, r), p.Categoria)
		f.SetCellValue(hoja, celda(4, r), p.Condicion)
		f.SetCellValue(hoja, celda(5, r), p.Stock)
		f.SetCellValue(hoja, celda(6, r), p.Precio.String())
		f.SetCellValue(hoja, celda(7, r), p.PrecioCosto.String())
		f.SetCellValue(hoja, celda(8, r), p.PrecioRevendedor.String())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir planilla de stock: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportarTransacciones una fila por renglón de venta del rango pedido.
func (e *Exporter) ExportarTransacciones(renglones []*entity.Venta) ([]byte, error) {
	f := excelize.NewFile()
	const hoja = "Transacciones"
	f.SetSheetName("Sheet1", hoja)

	encabezados := []string{"ID", "Fecha", "Producto", "Cantidad", "Precio unitario", "Tipo precio", "Total", "Tipo pago", "DNI cliente", "Manual", "Anulada"}
	for i, h := range encabezados {
		f.SetCellValue(hoja, celda(i, 1), h)
	}
	for fila, v := range renglones {
		r := fila + 2
		f.SetCellValue(hoja, celda(0, r), v.ID)
		f.SetCellValue(hoja, celda(1, r), v.Fecha.Format("2006-01-02 15:04:05"))
		f.SetCellValue(hoja, celda(2, r), v.Producto)
		f.SetCellValue(hoja, celda(3, r), v.Cantidad)
		f.SetCellValue(hoja, celda(4, r), v.PrecioUnitario.String())
		f.SetCellValue(hoja, celda(5, r), v.TipoPrecio)
		f.SetCellValue(hoja, celda(6, r), v.Total.String())
		f.SetCellValue(hoja, celda(7, r), v.TipoPago)
		f.SetCellValue(hoja, celda(8, r), v.DNICliente)
		f.SetCellValue(hoja, celda(9, r), boolTexto(v.Manual))
		f.SetCellValue(hoja, celda(10, r), boolTexto(v.Anulada))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir planilla de transacciones: %w", err)
	}
	return buf.Bytes(), nil
}

// celda convierte (columna base 0, fila base 1) en una referencia tipo "B3".
func celda(col, fila int) string {
	nombre := ""
	for col >= 0 {
		nombre = string(rune('A'+col%26)) + nombre
		col = col/26 - 1
	}
	return fmt.Sprintf("%s%d", nombre, fila)
}

func boolTexto(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
