// Package cart maneja la máquina de estados del armado de una venta en el
// punto de venta: Vacio → Armando → Confirmando → Registrada.
//
// El carrito vive en el servidor; este workflow nunca calcula estado nuevo
// localmente. Después de cada mutación guarda la representación que devuelve
// el backend (releer después de escribir), así el total y las líneas que se
// muestran nunca divergen de la verdad del servidor. El costo es un viaje
// extra por mutación y es deliberado: el stock y el carrito son recursos
// compartidos entre sesiones concurrentes y el backend es el único dueño de
// su consistencia.
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain/entity"
)

// Estado del workflow de venta.
type Estado string

const (
	EstadoVacio       Estado = "vacio"
	EstadoArmando     Estado = "armando"
	EstadoConfirmando Estado = "confirmando"
	EstadoRegistrada  Estado = "registrada"
)

// Validaciones locales: se rechazan antes de emitir cualquier petición.
var (
	ErrCarritoVacio       = errors.New("cart: el carrito está vacío")
	ErrFaltaCliente       = errors.New("cart: dni del cliente requerido")
	ErrMetodoPagoInvalido = errors.New("cart: método de pago inválido")
	ErrTipoPrecioInvalido = errors.New("cart: tipo de precio inválido")
	ErrNombreRequerido    = errors.New("cart: nombre del ítem manual requerido")
	ErrPrecioInvalido     = errors.New("cart: precio inválido")
	ErrConfirmandoEnCurso = errors.New("cart: ya hay una confirmación en curso")
)

// Gateway operaciones del backend que el workflow necesita.
// *api.Client lo satisface; los tests usan un doble.
type Gateway interface {
	VerCarrito(ctx context.Context) (*dto.CarritoResponse, error)
	AgregarAlCarrito(ctx context.Context, in dto.AgregarItemRequest) (*dto.CarritoResponse, error)
	AgregarManual(ctx context.Context, in dto.AgregarManualRequest) (*dto.CarritoResponse, error)
	VaciarCarrito(ctx context.Context) (*dto.CarritoResponse, error)
	RegistrarVenta(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error)
}

// Workflow arma una venta contra el carrito del servidor. Seguro para uso
// concurrente; las operaciones mutantes se serializan y una confirmación en
// vuelo rechaza el doble envío.
type Workflow struct {
	gw Gateway

	mu          sync.Mutex
	estado      Estado
	confirmando bool
	snapshot    dto.CarritoResponse
	resultado   *dto.RegistrarVentaResponse
}

// NewWorkflow construye el workflow en estado Vacio. Llamar Cargar para
// sincronizar con el carrito que el servidor ya tenga pendiente.
func NewWorkflow(gw Gateway) *Workflow {
	return &Workflow{gw: gw, estado: EstadoVacio}
}

// Estado devuelve el estado actual.
func (w *Workflow) Estado() Estado {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.estado
}

// Snapshot devuelve la última representación del carrito recibida del servidor.
func (w *Workflow) Snapshot() dto.CarritoResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot
}

// Total devuelve el total del carrito según el servidor. El cliente no lo
// recalcula, solo lo muestra.
func (w *Workflow) Total() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot.Total
}

// Resultado devuelve el comprobante de la última venta registrada, o nil.
func (w *Workflow) Resultado() *dto.RegistrarVentaResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resultado
}

// Cargar sincroniza el workflow con el carrito pendiente del servidor.
func (w *Workflow) Cargar(ctx context.Context) error {
	carrito, err := w.gw.VerCarrito(ctx)
	if err != nil {
		return err
	}
	w.aplicar(carrito)
	return nil
}

// Agregar pide al backend sumar unidades de un producto de catálogo. El
// precio lo resuelve el servidor según tipoPrecio; si rechaza por stock el
// carrito queda como estaba y el error se devuelve al llamador, sin ningún
// descuento optimista local.
func (w *Workflow) Agregar(ctx context.Context, productoID int64, cantidad int, tipoPrecio string) error {
	if tipoPrecio != entity.TipoPrecioVenta && tipoPrecio != entity.TipoPrecioRevendedor {
		return ErrTipoPrecioInvalido
	}
	carrito, err := w.gw.AgregarAlCarrito(ctx, dto.AgregarItemRequest{
		ProductoID: productoID,
		Cantidad:   cantidad,
		TipoPrecio: tipoPrecio,
	})
	if err != nil {
		return err
	}
	w.aplicar(carrito)
	return nil
}

// AgregarManual pide al backend sumar una línea libre. Nombre vacío o precio
// no parseable se rechazan acá, sin emitir petición. La cantidad viaja tal
// cual la ingresó el operador; el servidor la normaliza si hace falta.
func (w *Workflow) AgregarManual(ctx context.Context, nombre, precio string, cantidad int) error {
	if nombre == "" {
		return ErrNombreRequerido
	}
	if _, err := decimal.NewFromString(precio); err != nil {
		return ErrPrecioInvalido
	}
	carrito, err := w.gw.AgregarManual(ctx, dto.AgregarManualRequest{
		Nombre:   nombre,
		Precio:   precio,
		Cantidad: cantidad,
	})
	if err != nil {
		return err
	}
	w.aplicar(carrito)
	return nil
}

// Vaciar descarta todas las líneas pendientes, sin condiciones.
func (w *Workflow) Vaciar(ctx context.Context) error {
	carrito, err := w.gw.VaciarCarrito(ctx)
	if err != nil {
		return err
	}
	w.aplicar(carrito)
	return nil
}

// Confirmar registra el carrito como venta. Carrito vacío, cliente vacío o
// método de pago inválido se rechazan acá, sin emitir petición. Una segunda
// confirmación mientras hay otra en vuelo devuelve ErrConfirmandoEnCurso.
//
// En éxito el workflow relee el carrito (ya vacío) del servidor y queda en
// Registrada; el llamador debería refrescar también su listado de productos
// para reflejar el stock nuevo. En fracaso el carrito del servidor no se
// tocó y el estado vuelve a Armando; no hay compensación local porque la
// atomicidad es del backend.
func (w *Workflow) Confirmar(ctx context.Context, dniCliente, metodoPago string) (*dto.RegistrarVentaResponse, error) {
	w.mu.Lock()
	if w.confirmando {
		w.mu.Unlock()
		return nil, ErrConfirmandoEnCurso
	}
	if len(w.snapshot.Items) == 0 {
		w.mu.Unlock()
		return nil, ErrCarritoVacio
	}
	if dniCliente == "" {
		w.mu.Unlock()
		return nil, ErrFaltaCliente
	}
	if !entity.EsMetodoPago(metodoPago) {
		w.mu.Unlock()
		return nil, ErrMetodoPagoInvalido
	}
	w.confirmando = true
	w.estado = EstadoConfirmando
	w.mu.Unlock()

	resultado, err := w.gw.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		DNICliente: dniCliente,
		MetodoPago: metodoPago,
	})

	w.mu.Lock()
	w.confirmando = false
	if err != nil {
		w.estado = EstadoArmando
		w.mu.Unlock()
		return nil, err
	}
	w.resultado = resultado
	w.estado = EstadoRegistrada
	w.mu.Unlock()

	// Releer el carrito confirma que el servidor lo vació. Si la relectura
	// falla la venta ya quedó registrada, así que el error no la pisa.
	if carrito, err := w.gw.VerCarrito(ctx); err == nil {
		w.mu.Lock()
		w.snapshot = *carrito
		w.mu.Unlock()
	}
	return resultado, nil
}

// aplicar guarda la respuesta del servidor y deriva el estado.
func (w *Workflow) aplicar(carrito *dto.CarritoResponse) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snapshot = *carrito
	if len(carrito.Items) == 0 {
		w.estado = EstadoVacio
	} else {
		w.estado = EstadoArmando
	}
	w.resultado = nil
}
