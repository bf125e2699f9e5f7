package views

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/franmdz/celupos/internal/application/dto"
)

func TestTotalGeneral_SumaNetosConNegativos(t *testing.T) {
	neto := map[string]decimal.Decimal{
		"efectivo":      decimal.NewFromInt(1500),
		"transferencia": decimal.NewFromInt(-200),
	}

	total := TotalGeneral(neto)

	assert.True(t, total.Equal(decimal.NewFromInt(1300)),
		"efectivo 1500 y transferencia -200 deben dar total general 1300, no %s", total)
}

func TestTotalGeneral_MapaVacio(t *testing.T) {
	assert.True(t, TotalGeneral(nil).IsZero())
}

func TestRenderCaja_MuestraTotalGeneral(t *testing.T) {
	var buf bytes.Buffer
	RenderCaja(&buf, &dto.CajaResponse{
		FechaDesde: "2026-08-01",
		FechaHasta: "2026-08-29",
		NetoPorPago: map[string]decimal.Decimal{
			"efectivo":      decimal.NewFromInt(1500),
			"transferencia": decimal.NewFromInt(-200),
		},
	})

	salida := buf.String()
	assert.Contains(t, salida, "TOTAL GENERAL: $1300.00")
	assert.Contains(t, salida, "efectivo")
	assert.Contains(t, salida, "transferencia")
}

func TestLinkWhatsApp_EscapaElMensaje(t *testing.T) {
	p := dto.ProductoResponse{
		Nombre:    "iPhone 13",
		Color:     "azul",
		Condicion: "usado",
		Precio:    decimal.NewFromInt(350000),
	}

	link := LinkWhatsApp("543804315721", p)

	assert.Contains(t, link, "https://wa.me/543804315721?text=")
	assert.NotContains(t, link, " ", "el mensaje debe ir URL-encodeado")
	assert.Contains(t, link, "iPhone+13")
}

func TestLinkWhatsApp_SinPrecioOfreceConsultar(t *testing.T) {
	p := dto.ProductoResponse{Nombre: "repuesto"}

	link := LinkWhatsApp("543804315721", p)

	assert.Contains(t, link, "Consultar")
}
