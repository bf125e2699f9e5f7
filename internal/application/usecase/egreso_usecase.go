package usecase

import (
	"strings"
	"time"

	"github.com/franmdz/celupos/internal/application/dto"
	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// fechaEgreso formato de la fecha en el formulario de egresos.
const fechaEgreso = "2006-01-02"

// EgresoUseCase CRUD de egresos de caja.
type EgresoUseCase struct {
	repo repository.EgresoRepository
}

// NewEgresoUseCase construye el caso de uso.
func NewEgresoUseCase(repo repository.EgresoRepository) *EgresoUseCase {
	return &EgresoUseCase{repo: repo}
}

// Crear valida los campos obligatorios y persiste el egreso.
func (uc *EgresoUseCase) Crear(in dto.CrearEgresoRequest) (*dto.EgresoResponse, error) {
	if strings.TrimSpace(in.Fecha) == "" || strings.TrimSpace(in.Descripcion) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Monto.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.EsMetodoPago(in.TipoPago) {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse(fechaEgreso, in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Egreso{
		Fecha:       fecha,
		Monto:       in.Monto,
		Descripcion: strings.TrimSpace(in.Descripcion),
		TipoPago:    in.TipoPago,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEgresoResponse(e), nil
}

// Listar devuelve todos los egresos, más recientes primero.
func (uc *EgresoUseCase) Listar() ([]dto.EgresoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EgresoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEgresoResponse(e))
	}
	return out, nil
}

// Eliminar borra un egreso por ID.
func (uc *EgresoUseCase) Eliminar(id int64) error {
	return uc.repo.Delete(id)
}

func toEgresoResponse(e *entity.Egreso) *dto.EgresoResponse {
	return &dto.EgresoResponse{
		ID:          e.ID,
		Fecha:       e.Fecha.Format(fechaEgreso),
		Monto:       e.Monto,
		Descripcion: e.Descripcion,
		TipoPago:    e.TipoPago,
	}
}
