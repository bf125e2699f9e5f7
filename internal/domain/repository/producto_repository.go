package repository

import "github.com/franmdz/celupos/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	Update(p *entity.Producto) error
	// List busca con paginación; busqueda filtra por nombre o código de barras
	// (insensible a mayúsculas y acentos). Devuelve también el total de filas.
	List(busqueda string, limit, offset int) ([]*entity.Producto, int, error)
	// ListPorAgotarse lista productos con stock <= UmbralStockCritico, paginado.
	ListPorAgotarse(limit, offset int) ([]*entity.Producto, int, error)
	// ListTienda lista productos visibles en el catálogo público, con filtro
	// opcional por categoría.
	ListTienda(categoria string) ([]*entity.Producto, error)
	// ListAll devuelve el catálogo completo (exportación de stock).
	ListAll() ([]*entity.Producto, error)
	// DescontarStock descuenta cantidad del stock si alcanza; devuelve
	// domain.ErrInsufficientStock si no hay suficiente.
	DescontarStock(id int64, cantidad int) error
	// ReponerStock devuelve cantidad al stock (anulación de venta).
	ReponerStock(id int64, cantidad int) error
	Delete(id int64) error
}
