package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/franmdz/celupos/internal/application/analytics"
	"github.com/franmdz/celupos/internal/application/auth"
	"github.com/franmdz/celupos/internal/application/usecase"
	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/infrastructure/excel"
	"github.com/franmdz/celupos/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductoUC  *usecase.ProductoUseCase
	CategoriaUC *usecase.CategoriaUseCase
	EgresoUC    *usecase.EgresoUseCase
	TiendaUC    *usecase.TiendaUseCase
	CarritoUC   *ventas.CarritoUseCase
	RegistrarUC *ventas.RegistrarVentaUseCase
	TransUC     *ventas.TransaccionesUseCase
	ReporteUC   *analytics.ReporteUseCase
	Exporter    *excel.Exporter
	Tienda      config.TiendaConfig
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.Exporter)
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	egresoHandler := NewEgresoHandler(deps.EgresoUC)
	tiendaHandler := NewTiendaHandler(deps.TiendaUC)
	carritoHandler := NewCarritoHandler(deps.CarritoUC)
	ventaHandler := NewVentaHandler(deps.RegistrarUC, deps.TransUC, deps.Exporter)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	uploadHandler := NewUploadHandler(deps.Tienda)

	// Público: login, vidriera y las fotos de producto.
	app.Post("/login", authHandler.Login)
	app.Get("/tienda", tiendaHandler.Catalogo)
	app.Static("/uploads", deps.Tienda.UploadDir)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RoleAdmin)

	// Catálogo
	protected.Get("/productos", productoHandler.Listar)
	protected.Post("/productos", productoHandler.Crear)
	protected.Put("/productos/:id", productoHandler.Actualizar)
	protected.Delete("/productos/:id", soloAdmin, productoHandler.Eliminar)
	protected.Get("/productos_por_agotarse", productoHandler.PorAgotarse)
	protected.Get("/exportar_stock", soloAdmin, productoHandler.ExportarStock)

	// Categorías
	protected.Get("/categorias", categoriaHandler.Listar)
	protected.Post("/categorias", categoriaHandler.Crear)
	protected.Delete("/categorias/:nombre", soloAdmin, categoriaHandler.Eliminar)

	// Carrito y ventas
	protected.Get("/carrito", carritoHandler.Ver)
	protected.Post("/carrito/agregar", carritoHandler.Agregar)
	protected.Post("/carrito/agregar-manual", carritoHandler.AgregarManual)
	protected.Post("/carrito/vaciar", carritoHandler.Vaciar)
	protected.Post("/ventas/registrar", ventaHandler.Registrar)

	// Historial. La ruta fija va antes que las paramétricas.
	protected.Get("/transacciones/exportar", soloAdmin, ventaHandler.Exportar)
	protected.Get("/transacciones", ventaHandler.Transacciones)
	protected.Post("/transacciones/:id/anular", soloAdmin, ventaHandler.Anular)
	protected.Get("/transacciones/:id/comprobante", ventaHandler.Comprobante)

	// Egresos
	protected.Get("/egresos", egresoHandler.Listar)
	protected.Post("/egresos", egresoHandler.Crear)
	protected.Delete("/egresos/:id", soloAdmin, egresoHandler.Eliminar)

	// Reportes
	protected.Get("/caja", reporteHandler.Caja)
	protected.Get("/dashboard", soloAdmin, reporteHandler.Dashboard)
	protected.Get("/productos_mas_vendidos", reporteHandler.TopProductos)

	// Administración
	protected.Post("/usuarios", soloAdmin, authHandler.Register)
	protected.Post("/upload-imagen", uploadHandler.Imagen)
}
