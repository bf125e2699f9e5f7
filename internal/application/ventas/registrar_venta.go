package ventas

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// RegistrarVentaUseCase convierte el carrito pendiente en renglones de venta
// persistidos, descontando stock, dentro de una única transacción.
type RegistrarVentaUseCase struct {
	tx TxRunner
}

// NewRegistrarVentaUseCase construye el caso de uso.
func NewRegistrarVentaUseCase(tx TxRunner) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{tx: tx}
}

// Registrar confirma el carrito del usuario como venta. Valida DNI y método de
// pago antes de tocar la DB. Dentro de la transacción: relee el carrito (debe
// tener líneas), descuenta stock por cada línea de catálogo, inserta un renglón
// de venta por línea y vacía el carrito. Cualquier fallo revierte todo.
func (uc *RegistrarVentaUseCase) Registrar(ctx context.Context, usuario string, in dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	dni := strings.TrimSpace(in.DNICliente)
	if dni == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.EsMetodoPago(in.MetodoPago) {
		return nil, domain.ErrInvalidInput
	}

	out := &dto.RegistrarVentaResponse{GrupoID: uuid.New().String(), Total: decimal.Zero}
	err := uc.tx.Run(ctx, func(
		carritoRepo repository.CarritoRepository,
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
	) error {
		items, err := carritoRepo.ListByUsuario(usuario)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return domain.ErrEmptyCart
		}

		ahora := time.Now()
		for _, item := range items {
			venta := &entity.Venta{
				GrupoID:        out.GrupoID,
				ProductoID:     item.ProductoID,
				Producto:       item.Nombre,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.Precio,
				TipoPrecio:     item.TipoPrecio,
				Total:          item.Subtotal(),
				Fecha:          ahora,
				TipoPago:       in.MetodoPago,
				DNICliente:     dni,
				Manual:         item.EsManual(),
			}
			if item.ProductoID != nil {
				if err := productoRepo.DescontarStock(*item.ProductoID, item.Cantidad); err != nil {
					return err
				}
				producto, err := productoRepo.GetByID(*item.ProductoID)
				if err != nil {
					return err
				}
				if producto != nil && producto.Num != "" {
					num := producto.Num
					venta.Num = &num
				}
			}
			if err := ventaRepo.Create(venta); err != nil {
				return err
			}
			out.Total = out.Total.Add(venta.Total)
			out.Renglones++
		}
		return carritoRepo.Vaciar(usuario)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Anular marca un renglón de venta como anulado y repone el stock si el renglón
// estaba atado a un producto de catálogo. Idempotencia: anular dos veces
// devuelve ErrSaleVoided sin tocar el stock de nuevo.
func (uc *RegistrarVentaUseCase) Anular(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(
		_ repository.CarritoRepository,
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
	) error {
		venta, err := ventaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}
		if venta.Anulada {
			return domain.ErrSaleVoided
		}
		if err := ventaRepo.MarcarAnulada(id); err != nil {
			return err
		}
		if venta.ProductoID != nil {
			return productoRepo.ReponerStock(*venta.ProductoID, venta.Cantidad)
		}
		return nil
	})
}
