package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"pet-adoption/internal/workflow"
)

// promptConfirmer pregunta por out y lee la respuesta de in. Vacío o EOF => no.
func promptConfirmer(in io.Reader, out io.Writer) workflow.Confirmer {
	r := bufio.NewReader(in)
	return workflow.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s [y/N]: ", prompt)

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "s", "sim":
			return true, nil
		default:
			return false, nil
		}
	})
}
