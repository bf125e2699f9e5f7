package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword es un seam de test para term.ReadPassword.
var readPassword = term.ReadPassword

// LeerTexto imprime un prompt y lee una línea, sin el salto final.
// Si hay EOF después de leer algo, devuelve lo leído.
func LeerTexto(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// LeerPassword lee una contraseña de la terminal sin eco.
func LeerPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Contraseña: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// Confirmar pregunta sí/no y solo devuelve true ante un "s" o "si" explícito.
// Las operaciones destructivas no se emiten sin esta confirmación.
func Confirmar(reader *bufio.Reader, prompt string, w io.Writer) bool {
	resp, err := LeerTexto(reader, prompt+" (s/n)", w)
	if err != nil {
		return false
	}
	resp = strings.ToLower(resp)
	return resp == "s" || resp == "si" || resp == "sí"
}
