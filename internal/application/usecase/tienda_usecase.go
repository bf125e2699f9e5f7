package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// TiendaUseCase catálogo público de la tienda (sin autenticación).
type TiendaUseCase struct {
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewTiendaUseCase construye el caso de uso.
func NewTiendaUseCase(productoRepo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *TiendaUseCase {
	return &TiendaUseCase{productoRepo: productoRepo, categoriaRepo: categoriaRepo}
}

// Catalogo devuelve los productos visibles (stock > 0), con filtro opcional por
// categoría, más la lista de categorías para la barra de filtros.
func (uc *TiendaUseCase) Catalogo(categoria string) (*dto.TiendaResponse, error) {
	productos, err := uc.productoRepo.ListTienda(categoria)
	if err != nil {
		return nil, err
	}
	categorias, err := uc.categoriaRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.TiendaResponse{
		Productos:  make([]dto.ProductoResponse, 0, len(productos)),
		Categorias: categorias,
	}
	for _, p := range productos {
		r := *toProductoResponse(p)
		// El costo no se expone en el catálogo público.
		r.PrecioCosto = decimal.Zero
		out.Productos = append(out.Productos, r)
	}
	return out, nil
}
