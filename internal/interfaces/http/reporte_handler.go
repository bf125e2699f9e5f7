package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/franmdz/celupos/internal/application/analytics"
	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain"
)

// ReporteHandler maneja caja, dashboard y ranking de más vendidos.
type ReporteHandler struct {
	uc *analytics.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *analytics.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Caja devuelve el neto por método de pago del rango. Sin rango, el día de hoy.
func (h *ReporteHandler) Caja(c *fiber.Ctx) error {
	out, err := h.uc.Caja(c.Context(), c.Query("fecha_desde"), c.Query("fecha_hasta"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "rango de fechas inválido (YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Dashboard devuelve los KPIs del rango (solo admin).
func (h *ReporteHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), c.Query("fecha_desde"), c.Query("fecha_hasta"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "rango de fechas inválido (YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProductos devuelve el ranking histórico de más vendidos.
func (h *ReporteHandler) TopProductos(c *fiber.Ctx) error {
	out, err := h.uc.TopProductos(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
