package ventas_test

import (
	"context"
	"time"

	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia. El txFake imita la
// semántica transaccional: si el callback falla, el estado vuelve al snapshot
// previo, igual que un rollback.

type carritoFake struct {
	items  []*entity.CarritoItem
	nextID int64
}

func (f *carritoFake) ListByUsuario(usuario string) ([]*entity.CarritoItem, error) {
	var out []*entity.CarritoItem
	for _, it := range f.items {
		if it.Usuario == usuario {
			copia := *it
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *carritoFake) Add(item *entity.CarritoItem) error {
	f.nextID++
	item.ID = f.nextID
	copia := *item
	f.items = append(f.items, &copia)
	return nil
}

func (f *carritoFake) IncrementCantidad(usuario string, productoID int64, tipoPrecio string, cantidad int) (bool, error) {
	for _, it := range f.items {
		if it.Usuario == usuario && it.ProductoID != nil && *it.ProductoID == productoID && it.TipoPrecio == tipoPrecio {
			it.Cantidad += cantidad
			return true, nil
		}
	}
	return false, nil
}

func (f *carritoFake) Vaciar(usuario string) error {
	var quedan []*entity.CarritoItem
	for _, it := range f.items {
		if it.Usuario != usuario {
			quedan = append(quedan, it)
		}
	}
	f.items = quedan
	return nil
}

type productoFake struct {
	productos map[int64]*entity.Producto
}

func (f *productoFake) Create(p *entity.Producto) error { f.productos[p.ID] = p; return nil }

func (f *productoFake) GetByID(id int64) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *productoFake) Update(p *entity.Producto) error { f.productos[p.ID] = p; return nil }

func (f *productoFake) List(string, int, int) ([]*entity.Producto, int, error) {
	return nil, 0, nil
}

func (f *productoFake) ListPorAgotarse(int, int) ([]*entity.Producto, int, error) {
	return nil, 0, nil
}

func (f *productoFake) ListTienda(string) ([]*entity.Producto, error) { return nil, nil }
func (f *productoFake) ListAll() ([]*entity.Producto, error)          { return nil, nil }

func (f *productoFake) DescontarStock(id int64, cantidad int) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < cantidad {
		return domain.ErrInsufficientStock
	}
	p.Stock -= cantidad
	return nil
}

func (f *productoFake) ReponerStock(id int64, cantidad int) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += cantidad
	return nil
}

func (f *productoFake) Delete(id int64) error { delete(f.productos, id); return nil }

type ventaFake struct {
	ventas []*entity.Venta
	nextID int64
}

func (f *ventaFake) Create(v *entity.Venta) error {
	f.nextID++
	v.ID = f.nextID
	copia := *v
	f.ventas = append(f.ventas, &copia)
	return nil
}

func (f *ventaFake) GetByID(id int64) (*entity.Venta, error) {
	for _, v := range f.ventas {
		if v.ID == id {
			copia := *v
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *ventaFake) ListByFecha(desde, hasta time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range f.ventas {
		if !v.Fecha.Before(desde) && !v.Fecha.After(hasta) {
			copia := *v
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *ventaFake) ListByGrupo(grupoID string) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range f.ventas {
		if v.GrupoID == grupoID {
			copia := *v
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *ventaFake) MarcarAnulada(id int64) error {
	for _, v := range f.ventas {
		if v.ID == id {
			v.Anulada = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// txFake corre el callback sobre los fakes y deshace los cambios si falla.
type txFake struct {
	carrito   *carritoFake
	productos *productoFake
	ventas    *ventaFake
}

var _ ventas.TxRunner = (*txFake)(nil)

func (t *txFake) Run(_ context.Context, fn func(
	carritoRepo repository.CarritoRepository,
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	snapCarrito := clonarItems(t.carrito.items)
	snapProductos := clonarProductos(t.productos.productos)
	snapVentas := clonarVentas(t.ventas.ventas)

	if err := fn(t.carrito, t.ventas, t.productos); err != nil {
		t.carrito.items = snapCarrito
		t.productos.productos = snapProductos
		t.ventas.ventas = snapVentas
		return err
	}
	return nil
}

func clonarItems(items []*entity.CarritoItem) []*entity.CarritoItem {
	out := make([]*entity.CarritoItem, 0, len(items))
	for _, it := range items {
		copia := *it
		out = append(out, &copia)
	}
	return out
}

func clonarProductos(m map[int64]*entity.Producto) map[int64]*entity.Producto {
	out := make(map[int64]*entity.Producto, len(m))
	for id, p := range m {
		copia := *p
		out[id] = &copia
	}
	return out
}

func clonarVentas(ventas []*entity.Venta) []*entity.Venta {
	out := make([]*entity.Venta, 0, len(ventas))
	for _, v := range ventas {
		copia := *v
		out = append(out, &copia)
	}
	return out
}
