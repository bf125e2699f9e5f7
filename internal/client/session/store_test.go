package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeDePrueba(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "celupos", "session.json"))
}

func TestStore_SaveYLoad(t *testing.T) {
	st := storeDePrueba(t)

	require.NoError(t, st.Save(&Session{
		AccessToken: "tok-123",
		Username:    "cajero1",
		Role:        "vendedor",
	}))

	s, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", s.AccessToken)
	assert.Equal(t, "cajero1", s.Username)
	assert.Equal(t, "vendedor", s.Role)
	assert.False(t, s.Guardada.IsZero(), "Save debe sellar la fecha de guardado")
	assert.False(t, s.EsAdmin())
}

func TestStore_LoadSinArchivo(t *testing.T) {
	st := storeDePrueba(t)

	_, err := st.Load()

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_LoadArchivoCorrupto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, err := NewStore(path).Load()

	assert.ErrorIs(t, err, ErrNoSession, "un archivo corrupto equivale a no tener sesión")
}

func TestStore_Clear(t *testing.T) {
	st := storeDePrueba(t)
	require.NoError(t, st.Save(&Session{AccessToken: "tok", Username: "u", Role: "admin"}))

	require.NoError(t, st.Clear())

	_, err := st.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	// Clear sobre un store ya vacío no falla.
	assert.NoError(t, st.Clear())
}

func TestSession_EsAdmin(t *testing.T) {
	assert.True(t, (&Session{Role: "admin"}).EsAdmin())
	assert.False(t, (&Session{Role: "vendedor"}).EsAdmin())
}
