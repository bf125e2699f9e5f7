package ventas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
)

func nuevoCarritoUC() (*ventas.CarritoUseCase, *carritoFake, *productoFake) {
	carrito := &carritoFake{}
	productos := &productoFake{productos: map[int64]*entity.Producto{
		1: {
			ID:               1,
			Nombre:           "iPhone 13",
			Num:              "IMEI-111",
			Stock:            5,
			Precio:           decimal.NewFromInt(1000),
			PrecioRevendedor: decimal.NewFromInt(900),
		},
		2: {
			ID:     2,
			Nombre: "Funda silicona",
			Stock:  1,
			Precio: decimal.NewFromInt(50),
		},
	}}
	return ventas.NewCarritoUseCase(carrito, productos), carrito, productos
}

func TestCarritoAgregarProducto(t *testing.T) {
	uc, _, _ := nuevoCarritoUC()

	resp, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "iPhone 13", resp.Items[0].Nombre)
	assert.Equal(t, 1, resp.Items[0].Cantidad, "sin cantidad explícita se agrega una unidad")
	assert.Equal(t, entity.TipoPrecioVenta, resp.Items[0].TipoPrecio)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(1000)))
}

func TestCarritoAgregarPrecioRevendedor(t *testing.T) {
	uc, _, _ := nuevoCarritoUC()

	resp, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1, TipoPrecio: entity.TipoPrecioRevendedor})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Precio.Equal(decimal.NewFromInt(900)))
}

func TestCarritoAgregarTipoPrecioInvalido(t *testing.T) {
	uc, carrito, _ := nuevoCarritoUC()

	_, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1, TipoPrecio: "mayorista"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, carrito.items)
}

func TestCarritoAgregarProductoInexistente(t *testing.T) {
	uc, carrito, _ := nuevoCarritoUC()

	_, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 99})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, carrito.items)
}

func TestCarritoAgregarMismaLineaSuma(t *testing.T) {
	uc, carrito, _ := nuevoCarritoUC()

	_, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1, Cantidad: 2})
	require.NoError(t, err)
	resp, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1, Cantidad: 1})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "mismo producto y tipo de precio se mergea en una línea")
	assert.Equal(t, 3, resp.Items[0].Cantidad)
	assert.Len(t, carrito.items, 1)
}

func TestCarritoAgregarTiposDePrecioSeparados(t *testing.T) {
	uc, _, _ := nuevoCarritoUC()

	_, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1})
	require.NoError(t, err)
	resp, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1, TipoPrecio: entity.TipoPrecioRevendedor})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 2, "distinto tipo de precio produce líneas separadas")
}

func TestCarritoAgregarStockInsuficiente(t *testing.T) {
	uc, carrito, _ := nuevoCarritoUC()

	// El producto 2 tiene stock 1: la primera unidad entra, la segunda no,
	// porque el stock se valida contra lo ya reservado en el carrito.
	_, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 2})
	require.NoError(t, err)

	_, err = uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 2})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	resp, err := uc.Ver("cajero1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Cantidad, "el carrito queda como estaba")
	assert.Len(t, carrito.items, 1)
}

func TestCarritoAgregarManual(t *testing.T) {
	uc, _, _ := nuevoCarritoUC()

	resp, err := uc.AgregarManual("cajero1", dto.AgregarManualRequest{
		Nombre:   "Cambio de pantalla",
		Precio:   "350.50",
		Cantidad: 2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Nil(t, resp.Items[0].ID, "una línea manual no tiene producto de catálogo")
	assert.Equal(t, "manual", resp.Items[0].TipoPrecio)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("701.00")))
}

func TestCarritoAgregarManualCantidadMinimaUno(t *testing.T) {
	uc, _, _ := nuevoCarritoUC()

	resp, err := uc.AgregarManual("cajero1", dto.AgregarManualRequest{Nombre: "Film protector", Precio: "10"})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Cantidad)
}

func TestCarritoAgregarManualInvalido(t *testing.T) {
	uc, carrito, _ := nuevoCarritoUC()

	casos := []struct {
		nombre string
		in     dto.AgregarManualRequest
	}{
		{"sin nombre", dto.AgregarManualRequest{Precio: "100"}},
		{"sin precio", dto.AgregarManualRequest{Nombre: "Reparación"}},
		{"precio no numérico", dto.AgregarManualRequest{Nombre: "Reparación", Precio: "cien"}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.AgregarManual("cajero1", c.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, carrito.items)
}

func TestCarritoVaciar(t *testing.T) {
	uc, _, _ := nuevoCarritoUC()

	_, err := uc.Agregar("cajero1", dto.AgregarItemRequest{ProductoID: 1})
	require.NoError(t, err)
	_, err = uc.AgregarManual("otro", dto.AgregarManualRequest{Nombre: "Reparación", Precio: "100"})
	require.NoError(t, err)

	resp, err := uc.Vaciar("cajero1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())

	ajeno, err := uc.Ver("otro")
	require.NoError(t, err)
	assert.Len(t, ajeno.Items, 1, "vaciar solo toca el carrito del usuario")
}
