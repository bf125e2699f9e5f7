// Package api implementa el cliente HTTP contra la API del punto de venta.
// Todas las respuestas se decodifican a los mismos DTOs que sirve el backend,
// así el cliente nunca recalcula totales: muestra lo que el servidor manda.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/franmdz/celupos/internal/application/dto"
)

// APIError error devuelto por el backend, con el status HTTP y el cuerpo
// estructurado si lo hubo.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Client cliente tipado de la API. No es seguro cambiar el token
// concurrentemente con peticiones en vuelo.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New construye el cliente contra baseURL (ej. http://localhost:8080).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken fija el Bearer token para las rutas protegidas.
func (c *Client) SetToken(token string) { c.token = token }

// do arma la petición, agrega el token si existe y decodifica la respuesta
// JSON en out. Los status no-2xx se traducen a *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// doRaw igual que do pero devuelve el cuerpo crudo (descargas xlsx/pdf).
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: leer respuesta de %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorDesde(resp.StatusCode, data)
	}
	return data, nil
}

func errorDesde(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var e dto.ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		apiErr.Code = e.Code
		apiErr.Message = e.Message
	}
	return apiErr
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login valida credenciales. No guarda el token: eso lo decide el llamador.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CrearUsuario da de alta un usuario interno (requiere rol admin).
func (c *Client) CrearUsuario(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/usuarios", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// Productos lista el catálogo paginado, con búsqueda opcional.
func (c *Client) Productos(ctx context.Context, busqueda string, page, limit int) (*dto.ProductoListResponse, error) {
	q := url.Values{}
	if busqueda != "" {
		q.Set("busqueda", busqueda)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out dto.ProductoListResponse
	if err := c.do(ctx, http.MethodGet, "/productos", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CrearProducto da de alta un producto.
func (c *Client) CrearProducto(ctx context.Context, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	var out dto.ProductoResponse
	if err := c.do(ctx, http.MethodPost, "/productos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActualizarProducto reemplaza el producto con el formulario completo.
func (c *Client) ActualizarProducto(ctx context.Context, id int64, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	var out dto.ProductoResponse
	path := "/productos/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodPut, path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EliminarProducto borra un producto (solo admin).
func (c *Client) EliminarProducto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/productos/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// PorAgotarse lista productos con stock crítico, de a 20 por página.
func (c *Client) PorAgotarse(ctx context.Context, page int) (*dto.PorAgotarseResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var out dto.PorAgotarseResponse
	if err := c.do(ctx, http.MethodGet, "/productos_por_agotarse", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categorias devuelve los nombres de categoría.
func (c *Client) Categorias(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/categorias", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CrearCategoria agrega una categoría.
func (c *Client) CrearCategoria(ctx context.Context, nombre string) error {
	return c.do(ctx, http.MethodPost, "/categorias", nil, dto.CategoriaRequest{Nombre: nombre}, nil)
}

// EliminarCategoria borra una categoría por nombre (solo admin).
func (c *Client) EliminarCategoria(ctx context.Context, nombre string) error {
	return c.do(ctx, http.MethodDelete, "/categorias/"+url.PathEscape(nombre), nil, nil, nil)
}

// ExportarStock descarga el catálogo completo como xlsx (solo admin).
func (c *Client) ExportarStock(ctx context.Context) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "/exportar_stock", nil, nil)
}

// SubirImagen sube una foto de producto y devuelve su URL pública.
func (c *Client) SubirImagen(ctx context.Context, nombre string, contenido io.Reader) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", nombre)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, contenido); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-imagen", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: subir imagen: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorDesde(resp.StatusCode, data)
	}
	var out dto.UploadResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("api: decodificar respuesta de upload: %w", err)
	}
	return &out, nil
}

// ── Carrito y ventas ──────────────────────────────────────────────────────────

// VerCarrito devuelve el carrito actual con el total calculado por el servidor.
func (c *Client) VerCarrito(ctx context.Context) (*dto.CarritoResponse, error) {
	var out dto.CarritoResponse
	if err := c.do(ctx, http.MethodGet, "/carrito", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AgregarAlCarrito suma un producto de catálogo y devuelve el carrito resultante.
func (c *Client) AgregarAlCarrito(ctx context.Context, in dto.AgregarItemRequest) (*dto.CarritoResponse, error) {
	var out dto.CarritoResponse
	if err := c.do(ctx, http.MethodPost, "/carrito/agregar", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AgregarManual suma una línea libre (reparación u otro concepto).
func (c *Client) AgregarManual(ctx context.Context, in dto.AgregarManualRequest) (*dto.CarritoResponse, error) {
	var out dto.CarritoResponse
	if err := c.do(ctx, http.MethodPost, "/carrito/agregar-manual", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VaciarCarrito descarta todas las líneas y devuelve el carrito vacío.
func (c *Client) VaciarCarrito(ctx context.Context) (*dto.CarritoResponse, error) {
	var out dto.CarritoResponse
	if err := c.do(ctx, http.MethodPost, "/carrito/vaciar", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegistrarVenta confirma el carrito pendiente como venta.
func (c *Client) RegistrarVenta(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	var out dto.RegistrarVentaResponse
	if err := c.do(ctx, http.MethodPost, "/ventas/registrar", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transacciones lista el historial del rango (fechas YYYY-MM-DD, vacías = hoy).
func (c *Client) Transacciones(ctx context.Context, desde, hasta string) (*dto.TransaccionesResponse, error) {
	q := url.Values{}
	if desde != "" {
		q.Set("desde", desde)
	}
	if hasta != "" {
		q.Set("hasta", hasta)
	}
	var out dto.TransaccionesResponse
	if err := c.do(ctx, http.MethodGet, "/transacciones", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnularTransaccion anula un renglón y repone su stock (solo admin).
func (c *Client) AnularTransaccion(ctx context.Context, id int64) error {
	path := "/transacciones/" + strconv.FormatInt(id, 10) + "/anular"
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

// ExportarTransacciones descarga el historial del rango como xlsx (solo admin).
func (c *Client) ExportarTransacciones(ctx context.Context, desde, hasta string) ([]byte, error) {
	q := url.Values{}
	if desde != "" {
		q.Set("desde", desde)
	}
	if hasta != "" {
		q.Set("hasta", hasta)
	}
	return c.doRaw(ctx, http.MethodGet, "/transacciones/exportar", q, nil)
}

// Comprobante descarga el ticket PDF del grupo al que pertenece el renglón.
func (c *Client) Comprobante(ctx context.Context, id int64) ([]byte, error) {
	path := "/transacciones/" + strconv.FormatInt(id, 10) + "/comprobante"
	return c.doRaw(ctx, http.MethodGet, path, nil, nil)
}

// ── Egresos y reportes ────────────────────────────────────────────────────────

// Egresos lista todos los gastos registrados.
func (c *Client) Egresos(ctx context.Context) ([]dto.EgresoResponse, error) {
	var out []dto.EgresoResponse
	if err := c.do(ctx, http.MethodGet, "/egresos", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CrearEgreso registra un gasto.
func (c *Client) CrearEgreso(ctx context.Context, in dto.CrearEgresoRequest) (*dto.EgresoResponse, error) {
	var out dto.EgresoResponse
	if err := c.do(ctx, http.MethodPost, "/egresos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EliminarEgreso borra un gasto (solo admin).
func (c *Client) EliminarEgreso(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/egresos/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// Caja devuelve el neto por método de pago del rango.
func (c *Client) Caja(ctx context.Context, desde, hasta string) (*dto.CajaResponse, error) {
	q := url.Values{}
	if desde != "" {
		q.Set("fecha_desde", desde)
	}
	if hasta != "" {
		q.Set("fecha_hasta", hasta)
	}
	var out dto.CajaResponse
	if err := c.do(ctx, http.MethodGet, "/caja", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard devuelve los KPIs del rango (solo admin).
func (c *Client) Dashboard(ctx context.Context, desde, hasta string) (*dto.DashboardResponse, error) {
	q := url.Values{}
	if desde != "" {
		q.Set("fecha_desde", desde)
	}
	if hasta != "" {
		q.Set("fecha_hasta", hasta)
	}
	var out dto.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopProductos devuelve el ranking histórico de más vendidos.
func (c *Client) TopProductos(ctx context.Context) (*dto.TopProductosResponse, error) {
	var out dto.TopProductosResponse
	if err := c.do(ctx, http.MethodGet, "/productos_mas_vendidos", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tienda devuelve el catálogo público, con filtro opcional por categoría.
func (c *Client) Tienda(ctx context.Context, categoria string) (*dto.TiendaResponse, error) {
	q := url.Values{}
	if categoria != "" {
		q.Set("categoria", categoria)
	}
	var out dto.TiendaResponse
	if err := c.do(ctx, http.MethodGet, "/tienda", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
