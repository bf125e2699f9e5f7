/// Package cli implementa el cliente de terminal del punto de venta: un REPL
// que opera contra la API remota. No guarda estado de negocio propio; el
// carrito y el stock viven en el servidor y acá solo se muestran.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/client/api"
	"github.com/franmdz/celupos/internal/client/cart"
	"github.com/franmdz/celupos/internal/client/session"
	"github.com/franmdz/celupos/internal/client/views"
	"github.com/franmdz/celupos/internal/domain/entity"
)

// Config parámetros del cliente.
type Config struct {
	ServerAddr string // base de la API, ej. http://localhost:8080
	WhatsApp   string // número para los links de consulta de la vidriera
	Timeout    time.Duration
}

// App estado del cliente: sesión, gateway y el workflow de venta en curso.
type App struct {
	cfg    Config
	api    *api.Client
	store  *session.Store
	sess   *session.Session
	wf     *cart.Workflow
	reader *bufio.Reader
	out    io.Writer
}

// NewApp construye la aplicación y levanta la sesión guardada si existe.
func NewApp(cfg Config, store *session.Store) *App {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	cliente := api.New(cfg.ServerAddr, cfg.Timeout)
	a := &App{
		cfg:    cfg,
		api:    cliente,
		store:  store,
		wf:     cart.NewWorkflow(cliente),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	if sess, err := store.Load(); err == nil {
		a.sess = sess
		cliente.SetToken(sess.AccessToken)
	}
	return a
}

func (a *App) estaLogueado() bool { return a.sess != nil }

func (a *App) estado() string {
	if a.sess == nil {
		return "sin sesión"
	}
	return fmt.Sprintf("%s (%s) | carrito: %s", a.sess.Username, a.sess.Role, a.wf.Estado())
}

// Run arranca el REPL.
func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.estado, bufio.NewScanner(os.Stdin))
}

// ── Sesión ────────────────────────────────────────────────────────────────────

func (a *App) login(ctx context.Context) error {
	username, err := LeerTexto(a.reader, "Usuario", a.out)
	if err != nil {
		return err
	}
	password, err := LeerPassword(a.out)
	if err != nil {
		return err
	}
	resp, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		return err
	}
	sess := &session.Session{
		AccessToken: resp.AccessToken,
		Username:    resp.Username,
		Role:        resp.Role,
	}
	if err := a.store.Save(sess); err != nil {
		return err
	}
	a.sess = sess
	a.api.SetToken(resp.AccessToken)
	fmt.Fprintf(a.out, "sesión iniciada como %s (%s)\n", resp.Username, resp.Role)
	// Si quedó un carrito pendiente de otra corrida, lo retomamos.
	return a.wf.Cargar(ctx)
}

func (a *App) logout(context.Context) error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.sess = nil
	a.api.SetToken("")
	fmt.Fprintln(a.out, "sesión cerrada")
	return nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

func (a *App) productos(ctx context.Context, args []string) error {
	busqueda := ""
	page := 1
	if len(args) > 0 {
		busqueda = args[0]
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			page = n
		}
	}
	pag := views.NewPagina(20)
	pag.Actual = page
	lista, err := a.api.Productos(ctx, busqueda, pag.Actual, pag.Limit)
	if err != nil {
		return err
	}
	pag.Total = lista.Total
	views.RenderProductos(a.out, lista, pag, a.sess != nil && a.sess.EsAdmin())
	return nil
}

func (a *App) porAgotarse(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
		}
	}
	pag := views.NewPagina(20)
	pag.Actual = page
	resp, err := a.api.PorAgotarse(ctx, pag.Actual)
	if err != nil {
		return err
	}
	pag.Total = resp.Total
	views.RenderPorAgotarse(a.out, resp, pag)
	return nil
}

func (a *App) eliminarProducto(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: delproducto <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	if !Confirmar(a.reader, fmt.Sprintf("¿Eliminar el producto %d?", id), a.out) {
		fmt.Fprintln(a.out, "cancelado")
		return nil
	}
	if err := a.api.EliminarProducto(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "producto eliminado")
	return nil
}

func (a *App) categorias(ctx context.Context) error {
	cats, err := a.api.Categorias(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Fprintln(a.out, "-", c)
	}
	return nil
}

// ── Carrito y venta ───────────────────────────────────────────────────────────

func (a *App) carrito(ctx context.Context) error {
	if err := a.wf.Cargar(ctx); err != nil {
		return err
	}
	views.RenderCarrito(a.out, a.wf.Snapshot())
	return nil
}

func (a *App) agregar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: agregar <producto_id> [cantidad] [venta|revendedor]")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	cantidad := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			cantidad = n
		}
	}
	tipoPrecio := entity.TipoPrecioVenta
	if len(args) > 2 {
		tipoPrecio = args[2]
	}
	if err := a.wf.Agregar(ctx, id, cantidad, tipoPrecio); err != nil {
		return err
	}
	views.RenderCarrito(a.out, a.wf.Snapshot())
	return nil
}

func (a *App) manual(ctx context.Context) error {
	nombre, err := LeerTexto(a.reader, "Detalle (ej. reparación de pantalla)", a.out)
	if err != nil {
		return err
	}
	precio, err := LeerTexto(a.reader, "Precio", a.out)
	if err != nil {
		return err
	}
	cantidadTexto, err := LeerTexto(a.reader, "Cantidad (enter = 1)", a.out)
	if err != nil {
		return err
	}
	cantidad := 1
	if cantidadTexto != "" {
		if n, err := strconv.Atoi(cantidadTexto); err == nil {
			cantidad = n
		}
	}
	if err := a.wf.AgregarManual(ctx, nombre, precio, cantidad); err != nil {
		return err
	}
	views.RenderCarrito(a.out, a.wf.Snapshot())
	return nil
}

func (a *App) vaciar(ctx context.Context) error {
	if !Confirmar(a.reader, "¿Vaciar el carrito?", a.out) {
		fmt.Fprintln(a.out, "cancelado")
		return nil
	}
	if err := a.wf.Vaciar(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "carrito vaciado")
	return nil
}

func (a *App) vender(ctx context.Context) error {
	dni, err := LeerTexto(a.reader, "DNI del cliente", a.out)
	if err != nil {
		return err
	}
	metodo, err := LeerTexto(a.reader, "Método de pago (efectivo/debito/credito/transferencia)", a.out)
	if err != nil {
		return err
	}
	resultado, err := a.wf.Confirmar(ctx, dni, metodo)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "venta registrada: ticket %s, %d renglones, total $%s\n",
		resultado.GrupoID, resultado.Renglones, resultado.Total.StringFixed(2))
	return nil
}

// ── Historial ─────────────────────────────────────────────────────────────────

func rango(args []string) (desde, hasta string) {
	if len(args) > 0 {
		desde = args[0]
	}
	if len(args) > 1 {
		hasta = args[1]
	}
	return desde, hasta
}

// rangoTransacciones expande fechas sueltas (YYYY-MM-DD) a los límites con hora
// que espera el historial: desde a las 00:00:00 y hasta a las 23:59:59.
func rangoTransacciones(args []string) (desde, hasta string) {
	desde, hasta = rango(args)
	if desde != "" && !strings.Contains(desde, "T") {
		desde += "T00:00:00"
	}
	if hasta != "" && !strings.Contains(hasta, "T") {
		hasta += "T23:59:59"
	}
	return desde, hasta
}

func (a *App) transacciones(ctx context.Context, args []string) error {
	desde, hasta := rangoTransacciones(args)
	resp, err := a.api.Transacciones(ctx, desde, hasta)
	if err != nil {
		return err
	}
	views.RenderTransacciones(a.out, resp)
	return nil
}

func (a *App) anular(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: anular <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	if !Confirmar(a.reader, fmt.Sprintf("¿Anular la transacción %d y reponer su stock?", id), a.out) {
		fmt.Fprintln(a.out, "cancelado")
		return nil
	}
	if err := a.api.AnularTransaccion(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "transacción anulada")
	return nil
}

func (a *App) comprobante(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: comprobante <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	data, err := a.api.Comprobante(ctx, id)
	if err != nil {
		return err
	}
	nombre := fmt.Sprintf("comprobante_%d.pdf", id)
	if err := os.WriteFile(nombre, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "guardado", nombre)
	return nil
}

func (a *App) exportar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: exportar stock | exportar transacciones [desde hasta]")
	}
	var data []byte
	var nombre string
	var err error
	switch args[0] {
	case "stock":
		data, err = a.api.ExportarStock(ctx)
		nombre = "stock.xlsx"
	case "transacciones":
		desde, hasta := rangoTransacciones(args[1:])
		data, err = a.api.ExportarTransacciones(ctx, desde, hasta)
		nombre = "transacciones.xlsx"
	default:
		return fmt.Errorf("no sé exportar %q", args[0])
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(nombre, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "guardado", nombre)
	return nil
}

// ── Egresos y reportes ────────────────────────────────────────────────────────

func (a *App) egresos(ctx context.Context) error {
	lista, err := a.api.Egresos(ctx)
	if err != nil {
		return err
	}
	views.RenderEgresos(a.out, lista)
	return nil
}

func (a *App) nuevoEgreso(ctx context.Context) error {
	fecha, err := LeerTexto(a.reader, "Fecha (YYYY-MM-DD, enter = hoy)", a.out)
	if err != nil {
		return err
	}
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	montoTexto, err := LeerTexto(a.reader, "Monto", a.out)
	if err != nil {
		return err
	}
	monto, err := decimalDesde(montoTexto)
	if err != nil {
		return err
	}
	descripcion, err := LeerTexto(a.reader, "Descripción", a.out)
	if err != nil {
		return err
	}
	metodo, err := LeerTexto(a.reader, "Método de pago", a.out)
	if err != nil {
		return err
	}
	out, err := a.api.CrearEgreso(ctx, dto.CrearEgresoRequest{
		Fecha:       fecha,
		Monto:       monto,
		Descripcion: descripcion,
		TipoPago:    metodo,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "egreso %d registrado\n", out.ID)
	return nil
}

func (a *App) eliminarEgreso(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: delegreso <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	if !Confirmar(a.reader, fmt.Sprintf("¿Eliminar el egreso %d?", id), a.out) {
		fmt.Fprintln(a.out, "cancelado")
		return nil
	}
	if err := a.api.EliminarEgreso(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "egreso eliminado")
	return nil
}

func (a *App) caja(ctx context.Context, args []string) error {
	desde, hasta := rango(args)
	resp, err := a.api.Caja(ctx, desde, hasta)
	if err != nil {
		return err
	}
	views.RenderCaja(a.out, resp)
	return nil
}

func (a *App) dashboard(ctx context.Context, args []string) error {
	desde, hasta := rango(args)
	resp, err := a.api.Dashboard(ctx, desde, hasta)
	if err != nil {
		return err
	}
	views.RenderDashboard(a.out, resp)
	return nil
}

func (a *App) topProductos(ctx context.Context) error {
	resp, err := a.api.TopProductos(ctx)
	if err != nil {
		return err
	}
	views.RenderTopProductos(a.out, resp)
	return nil
}

func decimalDesde(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto inválido: %s", s)
	}
	return d, nil
}

func (a *App) tienda(ctx context.Context, args []string) error {
	categoria := ""
	if len(args) > 0 {
		categoria = args[0]
	}
	resp, err := a.api.Tienda(ctx, categoria)
	if err != nil {
		return err
	}
	views.RenderTienda(a.out, resp, a.cfg.WhatsApp)
	return nil
}
