package repository

import "github.com/franmdz/celupos/internal/domain/entity"

// EgresoRepository puerto de persistencia para Egreso.
type EgresoRepository interface {
	Create(e *entity.Egreso) error
	List() ([]*entity.Egreso, error)
	Delete(id int64) error
}
