package ventas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
)

func nuevoEscenarioVenta() (*ventas.RegistrarVentaUseCase, *txFake) {
	tx := &txFake{
		carrito: &carritoFake{},
		productos: &productoFake{productos: map[int64]*entity.Producto{
			1: {
				ID:     1,
				Nombre: "iPhone 13",
				Num:    "IMEI-111",
				Stock:  5,
				Precio: decimal.NewFromInt(1000),
			},
			2: {
				ID:     2,
				Nombre: "Funda silicona",
				Stock:  2,
				Precio: decimal.NewFromInt(50),
			},
		}},
		ventas: &ventaFake{},
	}
	return ventas.NewRegistrarVentaUseCase(tx), tx
}

func cargarCarrito(t *testing.T, tx *txFake, usuario string, productoID int64, cantidad int) {
	t.Helper()
	p := tx.productos.productos[productoID]
	require.NotNil(t, p)
	id := p.ID
	require.NoError(t, tx.carrito.Add(&entity.CarritoItem{
		Usuario:    usuario,
		ProductoID: &id,
		Nombre:     p.Nombre,
		Precio:     p.Precio,
		Cantidad:   cantidad,
		TipoPrecio: entity.TipoPrecioVenta,
	}))
}

func TestRegistrarVenta(t *testing.T) {
	uc, tx := nuevoEscenarioVenta()
	cargarCarrito(t, tx, "cajero1", 1, 2)
	require.NoError(t, tx.carrito.Add(&entity.CarritoItem{
		Usuario:    "cajero1",
		Nombre:     "Cambio de pantalla",
		Precio:     decimal.NewFromInt(350),
		Cantidad:   1,
		TipoPrecio: "manual",
	}))

	resp, err := uc.Registrar(context.Background(), "cajero1", dto.RegistrarVentaRequest{
		DNICliente: "30123456",
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.GrupoID)
	assert.Equal(t, 2, resp.Renglones)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(2350)), "total = 2×1000 + 350")

	require.Len(t, tx.ventas.ventas, 2)
	for _, v := range tx.ventas.ventas {
		assert.Equal(t, resp.GrupoID, v.GrupoID, "todos los renglones comparten el ticket")
		assert.Equal(t, "efectivo", v.TipoPago)
		assert.Equal(t, "30123456", v.DNICliente)
	}
	catalogo := tx.ventas.ventas[0]
	require.NotNil(t, catalogo.Num)
	assert.Equal(t, "IMEI-111", *catalogo.Num)
	assert.False(t, catalogo.Manual)
	assert.True(t, tx.ventas.ventas[1].Manual)
	assert.Nil(t, tx.ventas.ventas[1].Num)

	assert.Equal(t, 3, tx.productos.productos[1].Stock, "el stock se descuenta")
	assert.Empty(t, tx.carrito.items, "el carrito queda vacío")
}

func TestRegistrarVentaValidaAntesDeTransaccion(t *testing.T) {
	uc, tx := nuevoEscenarioVenta()
	cargarCarrito(t, tx, "cajero1", 1, 1)

	casos := []struct {
		nombre string
		in     dto.RegistrarVentaRequest
	}{
		{"sin dni", dto.RegistrarVentaRequest{MetodoPago: "efectivo"}},
		{"dni en blanco", dto.RegistrarVentaRequest{DNICliente: "   ", MetodoPago: "efectivo"}},
		{"método de pago desconocido", dto.RegistrarVentaRequest{DNICliente: "30123456", MetodoPago: "cheque"}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Registrar(context.Background(), "cajero1", c.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Empty(t, tx.ventas.ventas)
	assert.Equal(t, 5, tx.productos.productos[1].Stock)
	assert.Len(t, tx.carrito.items, 1, "el carrito no se toca")
}

func TestRegistrarVentaCarritoVacio(t *testing.T) {
	uc, tx := nuevoEscenarioVenta()

	_, err := uc.Registrar(context.Background(), "cajero1", dto.RegistrarVentaRequest{
		DNICliente: "30123456",
		MetodoPago: "debito",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, tx.ventas.ventas)
}

func TestRegistrarVentaSinStockRevierteTodo(t *testing.T) {
	uc, tx := nuevoEscenarioVenta()
	// Dos líneas: la primera alcanza, la segunda pide más funda que el stock.
	cargarCarrito(t, tx, "cajero1", 1, 1)
	cargarCarrito(t, tx, "cajero1", 2, 3)

	_, err := uc.Registrar(context.Background(), "cajero1", dto.RegistrarVentaRequest{
		DNICliente: "30123456",
		MetodoPago: "efectivo",
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, tx.ventas.ventas, "ningún renglón queda persistido")
	assert.Equal(t, 5, tx.productos.productos[1].Stock, "el descuento de la primera línea se revierte")
	assert.Len(t, tx.carrito.items, 2, "el carrito sigue intacto para reintentar")
}

func TestAnularVenta(t *testing.T) {
	uc, tx := nuevoEscenarioVenta()
	cargarCarrito(t, tx, "cajero1", 1, 2)
	resp, err := uc.Registrar(context.Background(), "cajero1", dto.RegistrarVentaRequest{
		DNICliente: "30123456",
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)
	require.Equal(t, 3, tx.productos.productos[1].Stock)

	id := tx.ventas.ventas[0].ID
	require.NoError(t, uc.Anular(context.Background(), id))

	assert.True(t, tx.ventas.ventas[0].Anulada)
	assert.Equal(t, 5, tx.productos.productos[1].Stock, "anular repone el stock")
	assert.Equal(t, resp.GrupoID, tx.ventas.ventas[0].GrupoID)
}

func TestAnularVentaIdempotente(t *testing.T) {
	uc, tx := nuevoEscenarioVenta()
	cargarCarrito(t, tx, "cajero1", 1, 1)
	_, err := uc.Registrar(context.Background(), "cajero1", dto.RegistrarVentaRequest{
		DNICliente: "30123456",
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	id := tx.ventas.ventas[0].ID
	require.NoError(t, uc.Anular(context.Background(), id))
	require.Equal(t, 5, tx.productos.productos[1].Stock)

	err = uc.Anular(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrSaleVoided)
	assert.Equal(t, 5, tx.productos.productos[1].Stock, "la segunda anulación no repone de nuevo")
}

func TestAnularVentaInexistente(t *testing.T) {
	uc, _ := nuevoEscenarioVenta()

	err := uc.Anular(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnularVentaManualNoTocaStock(t *testing.T) {
	uc, tx := nuevoEscenarioVenta()
	require.NoError(t, tx.carrito.Add(&entity.CarritoItem{
		Usuario:    "cajero1",
		Nombre:     "Reparación",
		Precio:     decimal.NewFromInt(200),
		Cantidad:   1,
		TipoPrecio: "manual",
	}))
	_, err := uc.Registrar(context.Background(), "cajero1", dto.RegistrarVentaRequest{
		DNICliente: "30123456",
		MetodoPago: "transferencia",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Anular(context.Background(), tx.ventas.ventas[0].ID))
	assert.True(t, tx.ventas.ventas[0].Anulada)
}
