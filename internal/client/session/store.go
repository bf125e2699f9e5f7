// Package session persiste la sesión del operador entre corridas del cliente.
// El token y los datos del usuario se guardan en un JSON bajo el directorio
// de configuración del sistema, con permisos solo para el dueño.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/franmdz/celupos/internal/domain/entity"
)

// ErrNoSession no hay sesión guardada: el operador tiene que loguearse.
var ErrNoSession = errors.New("session: no hay sesión guardada")

// Session datos persistidos tras un login exitoso.
type Session struct {
	AccessToken string    `json:"access_token"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	Guardada    time.Time `json:"guardada"`
}

// EsAdmin indica si la sesión pertenece a un administrador.
func (s *Session) EsAdmin() bool {
	return s.Role == entity.RoleAdmin
}

// Store lee y escribe la sesión en un archivo JSON.
type Store struct {
	path string
}

// NewStore construye el store sobre el path dado.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath devuelve la ubicación estándar del archivo de sesión
// (ej. ~/.config/celupos/session.json en Linux).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: resolver directorio de configuración: %w", err)
	}
	return filepath.Join(dir, "celupos", "session.json"), nil
}

// Save persiste la sesión, creando el directorio si hace falta.
func (st *Store) Save(s *Session) error {
	s.Guardada = time.Now()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("session: crear directorio: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("session: escribir %s: %w", st.path, err)
	}
	return nil
}

// Load lee la sesión guardada. Devuelve ErrNoSession si no existe o está corrupta.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("session: leer %s: %w", st.path, err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, ErrNoSession
	}
	if s.AccessToken == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

// Clear borra la sesión guardada. No falla si ya no existe.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: borrar %s: %w", st.path, err)
	}
	return nil
}
