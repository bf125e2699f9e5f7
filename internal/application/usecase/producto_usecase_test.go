package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/application/usecase"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
)

// productoRepoFake guarda productos en memoria y registra los argumentos de
// paginación que recibe, para verificar el cálculo de offset.
type productoRepoFake struct {
	productos map[int64]*entity.Producto
	nextID    int64

	listLimit, listOffset int
	agotLimit, agotOffset int
}

func nuevoProductoRepoFake() *productoRepoFake {
	return &productoRepoFake{productos: map[int64]*entity.Producto{}}
}

func (f *productoRepoFake) Create(p *entity.Producto) error {
	f.nextID++
	p.ID = f.nextID
	f.productos[p.ID] = p
	return nil
}

func (f *productoRepoFake) GetByID(id int64) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *productoRepoFake) Update(p *entity.Producto) error { f.productos[p.ID] = p; return nil }

func (f *productoRepoFake) List(_ string, limit, offset int) ([]*entity.Producto, int, error) {
	f.listLimit, f.listOffset = limit, offset
	return nil, len(f.productos), nil
}

func (f *productoRepoFake) ListPorAgotarse(limit, offset int) ([]*entity.Producto, int, error) {
	f.agotLimit, f.agotOffset = limit, offset
	var out []*entity.Producto
	total := 0
	for _, p := range f.productos {
		if p.Stock <= entity.UmbralStockCritico {
			total++
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, total, nil
}

func (f *productoRepoFake) ListTienda(string) ([]*entity.Producto, error) { return nil, nil }
func (f *productoRepoFake) ListAll() ([]*entity.Producto, error)          { return nil, nil }
func (f *productoRepoFake) DescontarStock(int64, int) error               { return nil }
func (f *productoRepoFake) ReponerStock(int64, int) error                 { return nil }
func (f *productoRepoFake) Delete(id int64) error                         { delete(f.productos, id); return nil }

func productoValido() dto.ProductoRequest {
	return dto.ProductoRequest{
		Nombre:    "iPhone 13",
		Categoria: "celulares",
		Condicion: "usado",
		Stock:     5,
		Precio:    decimal.NewFromInt(1000),
	}
}

func TestProductoCrear(t *testing.T) {
	repo := nuevoProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)

	resp, err := uc.Crear(productoValido())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "iPhone 13", resp.Nombre)
	require.Contains(t, repo.productos, resp.ID)
	assert.False(t, repo.productos[resp.ID].CreatedAt.IsZero())
}

func TestProductoCrearInvalido(t *testing.T) {
	uc := usecase.NewProductoUseCase(nuevoProductoRepoFake())

	casos := []struct {
		nombre  string
		mutador func(*dto.ProductoRequest)
	}{
		{"sin nombre", func(in *dto.ProductoRequest) { in.Nombre = "" }},
		{"sin categoría", func(in *dto.ProductoRequest) { in.Categoria = "" }},
		{"sin condición", func(in *dto.ProductoRequest) { in.Condicion = "" }},
		{"stock negativo", func(in *dto.ProductoRequest) { in.Stock = -1 }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := productoValido()
			c.mutador(&in)
			_, err := uc.Crear(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductoActualizar(t *testing.T) {
	repo := nuevoProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)
	creado, err := uc.Crear(productoValido())
	require.NoError(t, err)

	in := productoValido()
	in.Stock = 9
	in.Precio = decimal.NewFromInt(1100)
	resp, err := uc.Actualizar(creado.ID, in)
	require.NoError(t, err)

	assert.Equal(t, 9, resp.Stock)
	assert.True(t, repo.productos[creado.ID].Precio.Equal(decimal.NewFromInt(1100)))
}

func TestProductoActualizarInexistente(t *testing.T) {
	uc := usecase.NewProductoUseCase(nuevoProductoRepoFake())

	_, err := uc.Actualizar(99, productoValido())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductoListarPaginacion(t *testing.T) {
	repo := nuevoProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)

	resp, err := uc.Listar("", dto.PageRequest{Page: 3, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, 20, repo.listLimit)
	assert.Equal(t, 40, repo.listOffset, "página 3 con límite 20 arranca en la fila 40")
	assert.Equal(t, 3, resp.Page)
}

func TestProductoListarDefaults(t *testing.T) {
	repo := nuevoProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)

	resp, err := uc.Listar("", dto.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 0, repo.listOffset)
	assert.Positive(t, repo.listLimit)
}

func TestProductoPorAgotarse(t *testing.T) {
	repo := nuevoProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)
	alto := productoValido()
	alto.Stock = entity.UmbralStockCritico + 1
	_, err := uc.Crear(alto)
	require.NoError(t, err)
	bajo := productoValido()
	bajo.Nombre = "Funda silicona"
	bajo.Stock = 3
	_, err = uc.Crear(bajo)
	require.NoError(t, err)

	resp, err := uc.PorAgotarse(0)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total, "solo entra el producto con stock crítico")
	require.Len(t, resp.Productos, 1)
	assert.Equal(t, "Funda silicona", resp.Productos[0].Nombre)
	assert.Equal(t, 20, repo.agotLimit)
	assert.Equal(t, 0, repo.agotOffset, "página fuera de rango cae a la primera")
}
