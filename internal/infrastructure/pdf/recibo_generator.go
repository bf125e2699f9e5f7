// Package pdf genera el comprobante imprimible de un ticket de venta.
//
// Layout A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: nombre del local │ fecha + ticket   │
//	│  ────────────────────────────────────────────│
//	│  CLIENTE: DNI + método de pago               │
//	│  TABLA: Cant | Detalle | P.Unit | Subtotal   │
//	│  ────────────────────────────────────────────│
//	│  TOTAL                                       │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ventas.ReciboPDFGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa ventas.ReciboPDFGenerator usando Maroto v2.
type MarotoReciboGenerator struct {
	nombreLocal string
}

// NewMarotoReciboGenerator construye el generador con el nombre del local para el encabezado.
func NewMarotoReciboGenerator(nombreLocal string) *MarotoReciboGenerator {
	if nombreLocal == "" {
		nombreLocal = "celupos"
	}
	return &MarotoReciboGenerator{nombreLocal: nombreLocal}
}

// GenerarRecibo genera el PDF del ticket y devuelve sus bytes. Todos los
// renglones deben pertenecer al mismo grupo (ticket).
func (g *MarotoReciboGenerator) GenerarRecibo(_ context.Context, renglones []*entity.Venta) ([]byte, error) {
	if len(renglones) == 0 {
		return nil, fmt.Errorf("pdf: ticket sin renglones")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		WithAuthor(g.nombreLocal, true).
		Build()

	m := maroto.New(cfg)

	primero := renglones[0]
	m.AddRows(headerRow(g.nombreLocal, primero))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(primero))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, v := range renglones {
		m.AddRows(detalleRow(v))
		total = total.Add(v.Total)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del local (izq) y fecha + ticket (der).
func headerRow(nombreLocal string, v *entity.Venta) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nombreLocal, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Ticket "+v.GrupoID, props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(v.Fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func clienteRow(v *entity.Venta) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("DNI cliente: "+v.DNICliente, props.Text{Size: 9, Top: 2}),
		),
		col.New(6).Add(
			text.New("Pago: "+v.TipoPago, props.Text{Size: 9, Align: align.Right, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Align: a, Top: 1}),
		)
	}
	return row.New(8).Add(
		h("Cant", 1, align.Left),
		h("Detalle", 6, align.Left),
		h("P. Unit", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func detalleRow(v *entity.Venta) core.Row {
	detalle := v.Producto
	if v.Num != nil && *v.Num != "" {
		detalle += " (" + *v.Num + ")"
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", v.Cantidad), props.Text{Size: 9})),
		col.New(6).Add(text.New(detalle, props.Text{Size: 9})),
		col.New(2).Add(text.New("$"+v.PrecioUnitario.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		col.New(3).Add(text.New("$"+v.Total.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(9).Add(
			text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2}),
		),
		col.New(3).Add(
			text.New("$"+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
