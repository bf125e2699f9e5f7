package repository

import (
	"time"

	"github.com/franmdz/celupos/internal/domain/entity"
)

// VentaRepository puerto de persistencia del historial de ventas.
type VentaRepository interface {
	Create(v *entity.Venta) error
	GetByID(id int64) (*entity.Venta, error)
	// ListByFecha devuelve los renglones dentro del rango [desde, hasta],
	// ordenados por fecha descendente. Incluye los anulados.
	ListByFecha(desde, hasta time.Time) ([]*entity.Venta, error)
	// ListByGrupo devuelve todos los renglones de un mismo ticket.
	ListByGrupo(grupoID string) ([]*entity.Venta, error)
	// MarcarAnulada marca el renglón como anulado.
	MarcarAnulada(id int64) error
}
