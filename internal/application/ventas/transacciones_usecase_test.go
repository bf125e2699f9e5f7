package ventas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
)

type pdfFake struct {
	renglones int
}

func (f *pdfFake) GenerarRecibo(_ context.Context, renglones []*entity.Venta) ([]byte, error) {
	f.renglones = len(renglones)
	return []byte("%PDF-falso"), nil
}

func ventaDePrueba(id int64, grupo string, manual bool) *entity.Venta {
	return &entity.Venta{
		ID:             id,
		GrupoID:        grupo,
		Producto:       "iPhone 13",
		Cantidad:       1,
		PrecioUnitario: decimal.NewFromInt(1000),
		Total:          decimal.NewFromInt(1000),
		Fecha:          time.Now(),
		TipoPago:       "efectivo",
		DNICliente:     "30123456",
		Manual:         manual,
	}
}

func TestTransaccionesListarSeparaManuales(t *testing.T) {
	repo := &ventaFake{}
	require.NoError(t, repo.Create(ventaDePrueba(0, "g1", false)))
	require.NoError(t, repo.Create(ventaDePrueba(0, "g1", true)))
	uc := ventas.NewTransaccionesUseCase(repo, nil)

	resp, err := uc.Listar(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Len(t, resp.Ventas, 1)
	assert.Len(t, resp.Manuales, 1)
}

func TestComprobanteDelTicketCompleto(t *testing.T) {
	repo := &ventaFake{}
	require.NoError(t, repo.Create(ventaDePrueba(0, "g1", false)))
	require.NoError(t, repo.Create(ventaDePrueba(0, "g1", true)))
	require.NoError(t, repo.Create(ventaDePrueba(0, "g2", false)))
	pdf := &pdfFake{}
	uc := ventas.NewTransaccionesUseCase(repo, pdf)

	data, err := uc.Comprobante(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEmpty(t, data)
	assert.Equal(t, 2, pdf.renglones, "el recibo abarca todos los renglones del grupo")
}

func TestComprobanteVentaInexistente(t *testing.T) {
	uc := ventas.NewTransaccionesUseCase(&ventaFake{}, &pdfFake{})

	_, err := uc.Comprobante(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComprobanteSinGenerador(t *testing.T) {
	repo := &ventaFake{}
	require.NoError(t, repo.Create(ventaDePrueba(0, "g1", false)))
	uc := ventas.NewTransaccionesUseCase(repo, nil)

	_, err := uc.Comprobante(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
