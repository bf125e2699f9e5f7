package ventas

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// CarritoUseCase mutaciones del carrito pendiente de un usuario. Toda mutación
// devuelve la representación completa releída, para que el cliente reemplace su
// caché sin calcular estado local.
type CarritoUseCase struct {
	carritoRepo  repository.CarritoRepository
	productoRepo repository.ProductoRepository
}

// NewCarritoUseCase construye el caso de uso.
func NewCarritoUseCase(carritoRepo repository.CarritoRepository, productoRepo repository.ProductoRepository) *CarritoUseCase {
	return &CarritoUseCase{carritoRepo: carritoRepo, productoRepo: productoRepo}
}

// Ver devuelve el carrito del usuario con su total.
func (uc *CarritoUseCase) Ver(usuario string) (*dto.CarritoResponse, error) {
	items, err := uc.carritoRepo.ListByUsuario(usuario)
	if err != nil {
		return nil, err
	}
	return toCarritoResponse(items), nil
}

// Agregar suma una unidad (o la cantidad pedida) de un producto de catálogo.
// El precio se resuelve desde el catálogo según tipo_precio; el stock se valida
// contra lo ya reservado en el carrito y devuelve ErrInsufficientStock si no
// alcanza, dejando el carrito sin cambios.
func (uc *CarritoUseCase) Agregar(usuario string, in dto.AgregarItemRequest) (*dto.CarritoResponse, error) {
	if in.TipoPrecio == "" {
		in.TipoPrecio = entity.TipoPrecioVenta
	}
	if in.TipoPrecio != entity.TipoPrecioVenta && in.TipoPrecio != entity.TipoPrecioRevendedor {
		return nil, domain.ErrInvalidInput
	}
	cantidad := in.Cantidad
	if cantidad <= 0 {
		cantidad = 1
	}

	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.carritoRepo.ListByUsuario(usuario)
	if err != nil {
		return nil, err
	}
	reservado := 0
	for _, i := range items {
		if i.ProductoID != nil && *i.ProductoID == producto.ID {
			reservado += i.Cantidad
		}
	}
	if producto.Stock < reservado+cantidad {
		return nil, domain.ErrInsufficientStock
	}

	merged, err := uc.carritoRepo.IncrementCantidad(usuario, producto.ID, in.TipoPrecio, cantidad)
	if err != nil {
		return nil, err
	}
	if !merged {
		id := producto.ID
		item := &entity.CarritoItem{
			Usuario:    usuario,
			ProductoID: &id,
			Nombre:     producto.Nombre,
			Precio:     producto.PrecioPara(in.TipoPrecio),
			Cantidad:   cantidad,
			TipoPrecio: in.TipoPrecio,
		}
		if err := uc.carritoRepo.Add(item); err != nil {
			return nil, err
		}
	}
	return uc.Ver(usuario)
}

// AgregarManual agrega una línea sin producto de catálogo. Nombre y precio son
// obligatorios; el precio llega como string y debe parsear a decimal. Una
// cantidad ausente o menor a 1 se toma como 1.
func (uc *CarritoUseCase) AgregarManual(usuario string, in dto.AgregarManualRequest) (*dto.CarritoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" || strings.TrimSpace(in.Precio) == "" {
		return nil, domain.ErrInvalidInput
	}
	precio, err := decimal.NewFromString(strings.TrimSpace(in.Precio))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	cantidad := in.Cantidad
	if cantidad < 1 {
		cantidad = 1
	}
	item := &entity.CarritoItem{
		Usuario:    usuario,
		Nombre:     nombre,
		Precio:     precio,
		Cantidad:   cantidad,
		TipoPrecio: "manual",
	}
	if err := uc.carritoRepo.Add(item); err != nil {
		return nil, err
	}
	return uc.Ver(usuario)
}

// Vaciar descarta todas las líneas pendientes, incondicionalmente.
func (uc *CarritoUseCase) Vaciar(usuario string) (*dto.CarritoResponse, error) {
	if err := uc.carritoRepo.Vaciar(usuario); err != nil {
		return nil, err
	}
	return uc.Ver(usuario)
}

func toCarritoResponse(items []*entity.CarritoItem) *dto.CarritoResponse {
	out := &dto.CarritoResponse{
		Items: make([]dto.CarritoItemResponse, 0, len(items)),
		Total: entity.TotalCarrito(items),
	}
	for _, i := range items {
		out.Items = append(out.Items, dto.CarritoItemResponse{
			ID:         i.ProductoID,
			Nombre:     i.Nombre,
			Precio:     i.Precio,
			Cantidad:   i.Cantidad,
			TipoPrecio: i.TipoPrecio,
		})
	}
	return out
}
