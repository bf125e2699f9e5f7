package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/application/ventas"
	"github.com/franmdz/celupos/internal/domain"
)

// CarritoHandler maneja el carrito pendiente del usuario autenticado.
// Cada vendedor tiene su propio carrito, atado al username del token.
type CarritoHandler struct {
	uc *ventas.CarritoUseCase
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(uc *ventas.CarritoUseCase) *CarritoHandler {
	return &CarritoHandler{uc: uc}
}

// Ver devuelve el carrito actual con su total.
func (h *CarritoHandler) Ver(c *fiber.Ctx) error {
	out, err := h.uc.Ver(GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Agregar suma un producto de catálogo al carrito, validando stock contra
// lo ya reservado en el propio carrito.
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	var in dto.AgregarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Agregar(GetUsername(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id y tipo_precio válidos son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad pedida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AgregarManual suma una línea libre (ej. reparación) no atada al catálogo.
func (h *CarritoHandler) AgregarManual(c *fiber.Ctx) error {
	var in dto.AgregarManualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AgregarManual(GetUsername(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y precio válidos son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Vaciar descarta todas las líneas del carrito.
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	out, err := h.uc.Vaciar(GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
