package usecase

import (
	"strings"

	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/repository"
)

// CategoriaUseCase alta, baja y listado de categorías (clave: nombre).
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Listar devuelve los nombres de categoría ordenados.
func (uc *CategoriaUseCase) Listar() ([]string, error) {
	return uc.repo.List()
}

// Crear agrega una categoría nueva. Devuelve ErrDuplicate si ya existe.
func (uc *CategoriaUseCase) Crear(nombre string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(nombre)
}

// Eliminar borra la categoría por nombre.
func (uc *CategoriaUseCase) Eliminar(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(nombre)
}
