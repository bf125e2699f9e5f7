package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franmdz/celupos/internal/application/dto"
)

func servidorDePrueba(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestLogin_DecodificaRespuesta(t *testing.T) {
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "cajero1", in.Username)

		json.NewEncoder(w).Encode(dto.LoginResponse{
			AccessToken: "tok-abc",
			Username:    "cajero1",
			Role:        "vendedor",
		})
	})

	resp, err := c.Login(context.Background(), "cajero1", "secreta123")

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.AccessToken)
	assert.Equal(t, "vendedor", resp.Role)
}

func TestDo_ErrorEstructuradoSeTraduceAAPIError(t *testing.T) {
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente para la cantidad pedida",
		})
	})

	_, err := c.AgregarAlCarrito(context.Background(), dto.AgregarItemRequest{ProductoID: 1, Cantidad: 99})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "INSUFFICIENT_STOCK", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "stock insuficiente")
}

func TestDo_ErrorSinCuerpoJSON(t *testing.T) {
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.VerCarrito(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Code, "sin cuerpo estructurado solo queda el status")
}

func TestSetToken_EmiteBearerEnProtegidas(t *testing.T) {
	var recibido string
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		recibido = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(dto.CarritoResponse{})
	})
	c.SetToken("tok-abc")

	_, err := c.VerCarrito(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", recibido)
}

func TestProductos_ArmaQueryDePaginacion(t *testing.T) {
	var query string
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode(dto.ProductoListResponse{Page: 2, Limit: 20})
	})

	_, err := c.Productos(context.Background(), "iphone", 2, 20)

	require.NoError(t, err)
	assert.Contains(t, query, "busqueda=iphone")
	assert.Contains(t, query, "page=2")
	assert.Contains(t, query, "limit=20")
}

func TestTransacciones_RangoOpcional(t *testing.T) {
	var query string
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode(dto.TransaccionesResponse{})
	})

	_, err := c.Transacciones(context.Background(), "", "")

	require.NoError(t, err)
	assert.Empty(t, query, "sin rango no se mandan parámetros y el servidor asume hoy")
}

func TestComprobante_DevuelveBytesCrudos(t *testing.T) {
	pdf := []byte("%PDF-1.7 contenido")
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transacciones/9/comprobante", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	})

	data, err := c.Comprobante(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}
