package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn es un seam de test para la salida del REPL.
var printlnFn = fmt.Println

// comandos disponibles según estado de sesión.
const (
	ayudaSinSesion = "comandos: login, tienda [categoria], salir"
	ayudaConSesion = "comandos: productos [busqueda] [pag], poragotarse [pag], categorias, " +
		"carrito, agregar <id> [cant] [tipo], manual, vaciar, vender, " +
		"transacciones [desde hasta], anular <id>, comprobante <id>, " +
		"egresos, egreso, delegreso <id>, delproducto <id>, " +
		"caja [desde hasta], dashboard [desde hasta], top, tienda [categoria], " +
		"exportar stock|transacciones, logout, salir"
)

// runREPL lee una línea, toma el primer token como comando y despacha sobre a.
// Sale con EOF o con "salir". Los errores de los handlers se muestran y el
// loop sigue: no hay reintento automático, el operador decide si repetir.
func runREPL(ctx context.Context, a *App, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pos> %s >", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "salir" || cmd == "exit" || cmd == "quit" {
			printlnFn("¡Hasta luego!")
			return
		}
		if err := a.despachar(ctx, cmd, args); err != nil {
			printlnFn("error:", err.Error())
		}
	}
}

func (a *App) despachar(ctx context.Context, cmd string, args []string) error {
	// Comandos que no requieren sesión.
	switch cmd {
	case "help", "ayuda":
		if a.estaLogueado() {
			printlnFn(ayudaConSesion)
		} else {
			printlnFn(ayudaSinSesion)
		}
		return nil
	case "login":
		return a.login(ctx)
	case "tienda":
		return a.tienda(ctx, args)
	}

	if !a.estaLogueado() {
		return fmt.Errorf("sesión requerida, use login")
	}

	switch cmd {
	case "logout":
		return a.logout(ctx)
	case "productos":
		return a.productos(ctx, args)
	case "poragotarse":
		return a.porAgotarse(ctx, args)
	case "categorias":
		return a.categorias(ctx)
	case "delproducto":
		return a.eliminarProducto(ctx, args)
	case "carrito":
		return a.carrito(ctx)
	case "agregar":
		return a.agregar(ctx, args)
	case "manual":
		return a.manual(ctx)
	case "vaciar":
		return a.vaciar(ctx)
	case "vender":
		return a.vender(ctx)
	case "transacciones":
		return a.transacciones(ctx, args)
	case "anular":
		return a.anular(ctx, args)
	case "comprobante":
		return a.comprobante(ctx, args)
	case "exportar":
		return a.exportar(ctx, args)
	case "egresos":
		return a.egresos(ctx)
	case "egreso":
		return a.nuevoEgreso(ctx)
	case "delegreso":
		return a.eliminarEgreso(ctx, args)
	case "caja":
		return a.caja(ctx, args)
	case "dashboard":
		return a.dashboard(ctx, args)
	case "top":
		return a.topProductos(ctx)
	default:
		return fmt.Errorf("comando desconocido: %s", cmd)
	}
}
