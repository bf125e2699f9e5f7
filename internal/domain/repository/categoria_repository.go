package repository

// CategoriaRepository puerto para el catálogo de categorías (clave: nombre).
type CategoriaRepository interface {
	List() ([]string, error)
	Create(nombre string) error
	Delete(nombre string) error
}
