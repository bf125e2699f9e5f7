package postgres

import (
	"context"
	"fmt"

	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

var _ repository.EgresoRepository = (*EgresoRepo)(nil)

// EgresoRepo implementación de EgresoRepository sobre PostgreSQL (usable con pool o tx).
type EgresoRepo struct {
	q Querier
}

// NewEgresoRepository construye el adaptador de egresos. Pasar pool o tx (Querier).
func NewEgresoRepository(q Querier) *EgresoRepo {
	return &EgresoRepo{q: q}
}

// Create inserta un egreso y completa su ID.
func (r *EgresoRepo) Create(e *entity.Egreso) error {
	query := `
		INSERT INTO egresos (fecha, monto, descripcion, tipo_pago, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.Fecha, e.Monto, e.Descripcion, e.TipoPago, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert egreso: %w", err)
	}
	return nil
}

// List todos los egresos, más recientes primero.
func (r *EgresoRepo) List() ([]*entity.Egreso, error) {
	query := `
		SELECT id, fecha, monto, descripcion, tipo_pago, created_at
		FROM egresos ORDER BY fecha DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list egresos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Egreso
	for rows.Next() {
		var e entity.Egreso
		if err := rows.Scan(&e.ID, &e.Fecha, &e.Monto, &e.Descripcion, &e.TipoPago, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan egreso: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un egreso por ID.
func (r *EgresoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM egresos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete egreso: %w", err)
	}
	return nil
}
