package usecase

import (
	"time"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// ProductoUseCase CRUD y listados del catálogo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Crear valida los campos obligatorios del formulario y persiste.
func (uc *ProductoUseCase) Crear(in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Categoria == "" || in.Condicion == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		Nombre:           in.Nombre,
		CodigoBarras:     in.CodigoBarras,
		Num:              in.Num,
		Color:            in.Color,
		Bateria:          in.Bateria,
		Condicion:        in.Condicion,
		Categoria:        in.Categoria,
		Stock:            in.Stock,
		Precio:           in.Precio,
		PrecioCosto:      in.PrecioCosto,
		PrecioRevendedor: in.PrecioRevendedor,
		FotoURL:          in.FotoURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Actualizar reemplaza el producto con el estado completo del formulario.
func (uc *ProductoUseCase) Actualizar(id int64, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre == "" || in.Categoria == "" || in.Condicion == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	p.Nombre = in.Nombre
	p.CodigoBarras = in.CodigoBarras
	p.Num = in.Num
	p.Color = in.Color
	p.Bateria = in.Bateria
	p.Condicion = in.Condicion
	p.Categoria = in.Categoria
	p.Stock = in.Stock
	p.Precio = in.Precio
	p.PrecioCosto = in.PrecioCosto
	p.PrecioRevendedor = in.PrecioRevendedor
	p.FotoURL = in.FotoURL
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Listar búsqueda paginada sobre el catálogo.
func (uc *ProductoUseCase) Listar(busqueda string, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(busqueda, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// PorAgotarse productos con stock crítico (<= UmbralStockCritico), de a 20.
func (uc *ProductoUseCase) PorAgotarse(page int) (*dto.PorAgotarseResponse, error) {
	const limit = 20
	if page <= 0 {
		page = 1
	}
	list, total, err := uc.repo.ListPorAgotarse(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	productos := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		productos = append(productos, *toProductoResponse(p))
	}
	return &dto.PorAgotarseResponse{Productos: productos, Total: total}, nil
}

// ListarTodos catálogo completo, para exportación.
func (uc *ProductoUseCase) ListarTodos() ([]*entity.Producto, error) {
	return uc.repo.ListAll()
}

// Eliminar borra un producto por ID.
func (uc *ProductoUseCase) Eliminar(id int64) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		CodigoBarras:     p.CodigoBarras,
		Num:              p.Num,
		Color:            p.Color,
		Bateria:          p.Bateria,
		Condicion:        p.Condicion,
		Categoria:        p.Categoria,
		Stock:            p.Stock,
		Precio:           p.Precio,
		PrecioCosto:      p.PrecioCosto,
		PrecioRevendedor: p.PrecioRevendedor,
		FotoURL:          p.FotoURL,
	}
}
