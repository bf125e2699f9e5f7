package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/application/usecase"
	"github.com/franmdz/celupos/internal/domain"
)

// EgresoHandler maneja los gastos del negocio.
type EgresoHandler struct {
	uc *usecase.EgresoUseCase
}

// NewEgresoHandler construye el handler.
func NewEgresoHandler(uc *usecase.EgresoUseCase) *EgresoHandler {
	return &EgresoHandler{uc: uc}
}

// Listar devuelve todos los egresos, más recientes primero.
// La respuesta es un array pelado, así la consume el listado.
func (h *EgresoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Crear registra un egreso.
func (h *EgresoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearEgresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha (YYYY-MM-DD), monto positivo, descripción y tipo_pago válido son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Eliminar borra un egreso (solo admin).
func (h *EgresoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Eliminar(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "egreso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
