package repository

import "github.com/franmdz/celupos/internal/domain/entity"

// UsuarioRepository puerto de persistencia para Usuario.
type UsuarioRepository interface {
	FindByUsername(username string) (*entity.Usuario, error)
	Create(u *entity.Usuario) error
}
