package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// fechaRango formato de los parámetros fecha_desde / fecha_hasta.
const fechaRango = "2006-01-02"

// fechaHoraRango formato con hora que manda el cliente en los rangos de
// transacciones (desde=...T00:00:00, hasta=...T23:59:59).
const fechaHoraRango = "2006-01-02T15:04:05"

// topProductosLimit cantidad de productos del ranking de más vendidos.
const topProductosLimit = 10

// ReporteUseCase agregaciones de caja, dashboard y top de ventas. Todo el
// cálculo pesado vive en SQL; acá solo se arma la respuesta.
type ReporteUseCase struct {
	repo repository.ReporteRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(repo repository.ReporteRepository) *ReporteUseCase {
	return &ReporteUseCase{repo: repo}
}

// ParseRango interpreta los límites del rango en hora local. Acepta fecha con
// hora (YYYY-MM-DDTHH:MM:SS, como los manda el cliente de transacciones) o
// fecha sola (YYYY-MM-DD), en cuyo caso el límite superior se extiende a las
// 23:59:59 para cubrir el día completo. Vacíos -> día de hoy.
func ParseRango(fechaDesde, fechaHasta string) (time.Time, time.Time, error) {
	hoy := time.Now().Format(fechaRango)
	if fechaDesde == "" {
		fechaDesde = hoy
	}
	if fechaHasta == "" {
		fechaHasta = hoy
	}
	desde, err := parseLimite(fechaDesde, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hasta, err := parseLimite(fechaHasta, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if hasta.Before(desde) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return desde, hasta, nil
}

func parseLimite(valor string, finDeDia bool) (time.Time, error) {
	if t, err := time.ParseInLocation(fechaHoraRango, valor, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(fechaRango, valor, time.Local)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	if finDeDia {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}

// Caja neto por método de pago: ventas no anuladas menos egresos del rango.
func (uc *ReporteUseCase) Caja(ctx context.Context, fechaDesde, fechaHasta string) (*dto.CajaResponse, error) {
	desde, hasta, err := ParseRango(fechaDesde, fechaHasta)
	if err != nil {
		return nil, err
	}
	netos, err := uc.repo.NetoPorPago(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := &dto.CajaResponse{
		FechaDesde:  desde.Format(fechaRango),
		FechaHasta:  hasta.Format(fechaRango),
		NetoPorPago: make(map[string]decimal.Decimal, len(netos)),
	}
	for _, n := range netos {
		out.NetoPorPago[n.TipoPago] = n.Neto
	}
	return out, nil
}

// Dashboard KPIs del rango: ventas, costos, egresos, ganancia y la
// distribución productos vs reparaciones.
func (uc *ReporteUseCase) Dashboard(ctx context.Context, fechaDesde, fechaHasta string) (*dto.DashboardResponse, error) {
	desde, hasta, err := ParseRango(fechaDesde, fechaHasta)
	if err != nil {
		return nil, err
	}
	resumen, err := uc.repo.VentasResumen(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	egresos, err := uc.repo.TotalEgresos(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	productos := resumen.TotalVentas.Sub(resumen.TotalReparaciones)
	return &dto.DashboardResponse{
		TotalVentas:             resumen.TotalVentas,
		TotalCosto:              resumen.TotalCosto,
		TotalEgresos:            egresos,
		Ganancia:                resumen.TotalVentas.Sub(resumen.TotalCosto).Sub(egresos),
		TotalVentasReparaciones: resumen.TotalReparaciones,
		DistribucionVentas: []dto.DistribucionVentaResponse{
			{Tipo: "productos", Total: productos},
			{Tipo: "reparaciones", Total: resumen.TotalReparaciones},
		},
	}, nil
}

// TopProductos ranking por unidades vendidas con porcentaje sobre el total.
func (uc *ReporteUseCase) TopProductos(ctx context.Context) (*dto.TopProductosResponse, error) {
	top, err := uc.repo.TopProductos(ctx, topProductosLimit)
	if err != nil {
		return nil, err
	}
	totalUnidades := 0
	for _, t := range top {
		totalUnidades += t.Unidades
	}
	out := &dto.TopProductosResponse{
		TotalVentas: totalUnidades,
		Productos:   make([]dto.TopProductoResponse, 0, len(top)),
	}
	cien := decimal.NewFromInt(100)
	for _, t := range top {
		porcentaje := decimal.Zero
		if totalUnidades > 0 {
			porcentaje = decimal.NewFromInt(int64(t.Unidades)).
				Mul(cien).
				Div(decimal.NewFromInt(int64(totalUnidades))).
				Round(2)
		}
		out.Productos = append(out.Productos, dto.TopProductoResponse{
			Nombre:     t.Nombre,
			Precio:     t.Precio,
			Unidades:   t.Unidades,
			Porcentaje: porcentaje,
		})
	}
	return out, nil
}
