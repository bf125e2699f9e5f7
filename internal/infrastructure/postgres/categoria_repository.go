package postgres

import (
	"context"
	"fmt"

	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// List nombres de categoría en orden alfabético.
func (r *CategoriaRepo) List() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT nombre FROM categorias ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, nombre)
	}
	return list, rows.Err()
}

// Create inserta una categoría. Devuelve ErrDuplicate si el nombre ya existe.
func (r *CategoriaRepo) Create(nombre string) error {
	_, err := r.q.Exec(context.Background(), `INSERT INTO categorias (nombre) VALUES ($1)`, nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// Delete elimina una categoría por nombre.
func (r *CategoriaRepo) Delete(nombre string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE nombre = $1`, nombre)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
