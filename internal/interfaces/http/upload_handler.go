package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/pkg/config"
)

// maxImagenBytes límite de tamaño para fotos de producto.
const maxImagenBytes = 5 << 20

var extensionesImagen = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler guarda fotos de producto en disco y devuelve su URL pública.
type UploadHandler struct {
	cfg config.TiendaConfig
}

// NewUploadHandler construye el handler.
func NewUploadHandler(cfg config.TiendaConfig) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Imagen recibe un multipart con campo "file", lo persiste bajo el directorio
// de uploads con nombre aleatorio y responde la URL para foto_url.
func (h *UploadHandler) Imagen(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	if fh.Size > maxImagenBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "la imagen supera los 5MB"})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionesImagen[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "formatos permitidos: jpg, jpeg, png, webp"})
	}
	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	nombre := uuid.NewString() + ext
	destino := filepath.Join(h.cfg.UploadDir, nombre)
	if err := c.SaveFile(fh, destino); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	url := strings.TrimRight(h.cfg.PublicBaseURL, "/") + "/uploads/" + nombre
	return c.JSON(dto.UploadResponse{URL: url})
}
