package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/application/usecase"
)

// TiendaHandler expone el catálogo público, sin autenticación.
// Los precios de costo salen en cero para no filtrar márgenes.
type TiendaHandler struct {
	uc *usecase.TiendaUseCase
}

// NewTiendaHandler construye el handler.
func NewTiendaHandler(uc *usecase.TiendaUseCase) *TiendaHandler {
	return &TiendaHandler{uc: uc}
}

// Catalogo devuelve productos con stock y las categorías para el filtro.
func (h *TiendaHandler) Catalogo(c *fiber.Ctx) error {
	out, err := h.uc.Catalogo(c.Query("categoria"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
