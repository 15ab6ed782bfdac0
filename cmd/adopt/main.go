// adopt es el cliente de línea de comandos del flujo de adopción.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption/internal/workflow"
)

// version se setea en build con -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		stop()
		os.Exit(1)
	}
}

// userMessage muestra el mensaje del servidor tal cual cuando existe.
func userMessage(err error) string {
	var re *workflow.RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return "error: " + re.Message
	}
	return "error: " + err.Error()
}
