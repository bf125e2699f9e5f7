package ventas

import (
	"context"
	"time"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// ReciboPDFGenerator puerto para la representación imprimible de un ticket.
type ReciboPDFGenerator interface {
	GenerarRecibo(ctx context.Context, renglones []*entity.Venta) ([]byte, error)
}

// TransaccionesUseCase lecturas del historial de ventas.
type TransaccionesUseCase struct {
	ventaRepo repository.VentaRepository
	pdf       ReciboPDFGenerator
}

// NewTransaccionesUseCase construye el caso de uso. pdf puede ser nil si no se
// sirve el comprobante.
func NewTransaccionesUseCase(ventaRepo repository.VentaRepository, pdf ReciboPDFGenerator) *TransaccionesUseCase {
	return &TransaccionesUseCase{ventaRepo: ventaRepo, pdf: pdf}
}

// Listar devuelve el historial del rango partido en ventas de catálogo y manuales.
func (uc *TransaccionesUseCase) Listar(desde, hasta time.Time) (*dto.TransaccionesResponse, error) {
	renglones, err := uc.ventaRepo.ListByFecha(desde, hasta)
	if err != nil {
		return nil, err
	}
	out := &dto.TransaccionesResponse{
		Ventas:   []dto.VentaResponse{},
		Manuales: []dto.VentaResponse{},
	}
	for _, v := range renglones {
		r := toVentaResponse(v)
		if v.Manual {
			out.Manuales = append(out.Manuales, r)
		} else {
			out.Ventas = append(out.Ventas, r)
		}
	}
	return out, nil
}

// ListarEntidades devuelve los renglones crudos del rango (exportación Excel).
func (uc *TransaccionesUseCase) ListarEntidades(desde, hasta time.Time) ([]*entity.Venta, error) {
	return uc.ventaRepo.ListByFecha(desde, hasta)
}

// Comprobante genera el PDF del ticket al que pertenece el renglón id.
func (uc *TransaccionesUseCase) Comprobante(ctx context.Context, id int64) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotFound
	}
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	renglones, err := uc.ventaRepo.ListByGrupo(venta.GrupoID)
	if err != nil {
		return nil, err
	}
	if len(renglones) == 0 {
		renglones = []*entity.Venta{venta}
	}
	return uc.pdf.GenerarRecibo(ctx, renglones)
}

func toVentaResponse(v *entity.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:             v.ID,
		Producto:       v.Producto,
		Cantidad:       v.Cantidad,
		Num:            v.Num,
		PrecioUnitario: v.PrecioUnitario,
		TipoPrecio:     v.TipoPrecio,
		Total:          v.Total,
		Fecha:          v.Fecha.Format(time.RFC3339),
		TipoPago:       v.TipoPago,
		DNICliente:     v.DNICliente,
		Anulada:        v.Anulada,
	}
}
