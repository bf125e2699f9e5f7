package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/franmdz/celupos/internal/application/analytics"
	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/infrastructure/excel"
)

// VentaHandler maneja el registro de ventas y el historial de transacciones.
type VentaHandler struct {
	registrar *ventas.RegistrarVentaUseCase
	trans     *ventas.TransaccionesUseCase
	exporter  *excel.Exporter
}

// NewVentaHandler construye el handler.
func NewVentaHandler(registrar *ventas.RegistrarVentaUseCase, trans *ventas.TransaccionesUseCase, exporter *excel.Exporter) *VentaHandler {
	return &VentaHandler{registrar: registrar, trans: trans, exporter: exporter}
}

// Registrar confirma el carrito pendiente como venta. Descuento de stock,
// inserción de renglones y vaciado del carrito ocurren en una transacción.
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registrar.Registrar(c.Context(), GetUsername(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dni_cliente y metodo_pago válidos son requeridos"})
		}
		if errors.Is(err, domain.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente, el carrito no se modificó"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transacciones lista el historial del rango, con ventas de catálogo y
// manuales separadas. Sin rango devuelve el día de hoy.
func (h *VentaHandler) Transacciones(c *fiber.Ctx) error {
	desde, hasta, err := analytics.ParseRango(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "rango de fechas inválido (YYYY-MM-DD)"})
	}
	out, err := h.trans.Listar(desde, hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Anular marca el renglón como anulado y repone su stock (solo admin).
func (h *VentaHandler) Anular(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.registrar.Anular(c.Context(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
		}
		if errors.Is(err, domain.ErrSaleVoided) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_VOIDED", Message: "la transacción ya está anulada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Exportar descarga el historial del rango como planilla xlsx (solo admin).
func (h *VentaHandler) Exportar(c *fiber.Ctx) error {
	desde, hasta, err := analytics.ParseRango(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "rango de fechas inválido (YYYY-MM-DD)"})
	}
	renglones, err := h.trans.ListarEntidades(desde, hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.exporter.ExportarTransacciones(renglones)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	nombre := "transacciones_" + time.Now().Format("20060102") + ".xlsx"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// Comprobante devuelve el ticket en PDF del grupo al que pertenece el renglón.
func (h *VentaHandler) Comprobante(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	data, err := h.trans.Comprobante(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprobante.pdf"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
