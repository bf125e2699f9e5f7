package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/franmdz/celupos/internal/client/cli"
	"github.com/franmdz/celupos/internal/client/session"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "dirección base de la API")
	whatsapp := flag.String("whatsapp", "", "número destino para consultas de la tienda (wa.me)")
	timeout := flag.Duration("timeout", 15*time.Second, "timeout por petición")
	sessionPath := flag.String("session", "", "archivo de sesión (por defecto en el directorio de configuración)")
	flag.Parse()

	path := *sessionPath
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "resolver archivo de sesión:", err)
			os.Exit(1)
		}
	}

	app := cli.NewApp(cli.Config{
		ServerAddr: *addr,
		WhatsApp:   *whatsapp,
		Timeout:    *timeout,
	}, session.NewStore(path))

	app.Run(context.Background())
}
