package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franmdz/celupos/internal/application/analytics"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/repository"
)

type reporteFake struct {
	netos   []repository.NetoPorPagoResult
	resumen repository.VentasResumenResult
	egresos decimal.Decimal
	top     []repository.TopProductoResult

	desde, hasta time.Time
}

func (f *reporteFake) NetoPorPago(_ context.Context, desde, hasta time.Time) ([]repository.NetoPorPagoResult, error) {
	f.desde, f.hasta = desde, hasta
	return f.netos, nil
}

func (f *reporteFake) VentasResumen(_ context.Context, desde, hasta time.Time) (*repository.VentasResumenResult, error) {
	f.desde, f.hasta = desde, hasta
	resumen := f.resumen
	return &resumen, nil
}

func (f *reporteFake) TotalEgresos(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return f.egresos, nil
}

func (f *reporteFake) TopProductos(context.Context, int) ([]repository.TopProductoResult, error) {
	return f.top, nil
}

func TestParseRango(t *testing.T) {
	desde, hasta, err := analytics.ParseRango("2026-08-01", "2026-08-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), desde)
	assert.Equal(t, time.Date(2026, 8, 15, 23, 59, 59, 0, time.Local), hasta, "el límite superior cubre el día completo")
}

func TestParseRangoConHora(t *testing.T) {
	// El historial de transacciones manda los límites con hora.
	desde, hasta, err := analytics.ParseRango("2026-08-29T00:00:00", "2026-08-29T23:59:59")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local), desde)
	assert.Equal(t, time.Date(2026, 8, 29, 23, 59, 59, 0, time.Local), hasta)
}

func TestParseRangoMixto(t *testing.T) {
	// Un límite con hora explícita no se extiende al fin del día.
	desde, hasta, err := analytics.ParseRango("2026-08-01", "2026-08-15T12:30:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), desde)
	assert.Equal(t, time.Date(2026, 8, 15, 12, 30, 0, 0, time.Local), hasta)
}

func TestParseRangoVacioEsHoy(t *testing.T) {
	desde, hasta, err := analytics.ParseRango("", "")
	require.NoError(t, err)

	hoy := time.Now().Format("2006-01-02")
	assert.Equal(t, hoy, desde.Format("2006-01-02"))
	assert.Equal(t, hoy, hasta.Format("2006-01-02"))
	assert.True(t, desde.Before(hasta))
}

func TestParseRangoInvalido(t *testing.T) {
	casos := []struct {
		nombre       string
		desde, hasta string
	}{
		{"formato desconocido", "01/08/2026", "2026-08-15"},
		{"hasta ilegible", "2026-08-01", "ayer"},
		{"rango invertido", "2026-08-15", "2026-08-01"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, _, err := analytics.ParseRango(c.desde, c.hasta)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCaja(t *testing.T) {
	fake := &reporteFake{netos: []repository.NetoPorPagoResult{
		{TipoPago: "efectivo", Neto: decimal.NewFromInt(1500)},
		{TipoPago: "transferencia", Neto: decimal.NewFromInt(-200)},
	}}
	uc := analytics.NewReporteUseCase(fake)

	resp, err := uc.Caja(context.Background(), "2026-08-01", "2026-08-15")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", resp.FechaDesde)
	assert.Equal(t, "2026-08-15", resp.FechaHasta)
	require.Len(t, resp.NetoPorPago, 2)
	assert.True(t, resp.NetoPorPago["efectivo"].Equal(decimal.NewFromInt(1500)))
	assert.True(t, resp.NetoPorPago["transferencia"].Equal(decimal.NewFromInt(-200)), "un método puede quedar en negativo")
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), fake.desde)
}

func TestCajaRangoInvalido(t *testing.T) {
	uc := analytics.NewReporteUseCase(&reporteFake{})

	_, err := uc.Caja(context.Background(), "nunca", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDashboard(t *testing.T) {
	fake := &reporteFake{
		resumen: repository.VentasResumenResult{
			TotalVentas:       decimal.NewFromInt(10000),
			TotalCosto:        decimal.NewFromInt(6000),
			TotalReparaciones: decimal.NewFromInt(1200),
		},
		egresos: decimal.NewFromInt(500),
	}
	uc := analytics.NewReporteUseCase(fake)

	resp, err := uc.Dashboard(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.True(t, resp.Ganancia.Equal(decimal.NewFromInt(3500)), "ganancia = ventas - costo - egresos")
	assert.True(t, resp.TotalVentasReparaciones.Equal(decimal.NewFromInt(1200)))
	require.Len(t, resp.DistribucionVentas, 2)
	assert.Equal(t, "productos", resp.DistribucionVentas[0].Tipo)
	assert.True(t, resp.DistribucionVentas[0].Total.Equal(decimal.NewFromInt(8800)))
	assert.Equal(t, "reparaciones", resp.DistribucionVentas[1].Tipo)
}

func TestTopProductos(t *testing.T) {
	fake := &reporteFake{top: []repository.TopProductoResult{
		{Nombre: "iPhone 13", Precio: decimal.NewFromInt(1000), Unidades: 30},
		{Nombre: "Funda silicona", Precio: decimal.NewFromInt(50), Unidades: 10},
	}}
	uc := analytics.NewReporteUseCase(fake)

	resp, err := uc.TopProductos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40, resp.TotalVentas)
	require.Len(t, resp.Productos, 2)
	assert.True(t, resp.Productos[0].Porcentaje.Equal(decimal.NewFromInt(75)))
	assert.True(t, resp.Productos[1].Porcentaje.Equal(decimal.NewFromInt(25)))
}

func TestTopProductosSinVentas(t *testing.T) {
	uc := analytics.NewReporteUseCase(&reporteFake{})

	resp, err := uc.TopProductos(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resp.TotalVentas)
	assert.Empty(t, resp.Productos)
}
