package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alejandrodnm/hedgecalc/internal/application/calculator"
	"github.com/alejandrodnm/hedgecalc/internal/domain"
)

const interactiveHelp = `commands:
  <field>=<value>   update a field (primary_odds, primary_stake, primary_rebate,
                    secondary_odds, secondary_rebate; rebates in percent)
  calc              calculate and print the result
  show              print the current fields
  reset             restore the configured defaults
  help              print this help
  quit              exit`

// runInteractive lee comandos línea a línea. Cada cambio de campo revalida el
// formulario; el cálculo solo se ejecuta con "calc". La lectura de stdin corre
// en su propia goroutine para que la cancelación de ctx corte la espera.
func runInteractive(ctx context.Context, s *calculator.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, interactiveHelp)
	printFields(out, s)

	done := make(chan struct{})
	defer close(done)
	lines, scanErr := scanLines(in, done)

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(out, "> ")

		select {
		case <-ctx.Done():
			slog.Debug("interactive session cancelled")
			return nil
		case raw, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				slog.Debug("interactive input closed")
				return nil
			}
			if quit := handleLine(ctx, s, out, strings.TrimSpace(raw)); quit {
				return nil
			}
		}
	}
}

// scanLines entrega las líneas de in por el canal hasta EOF o hasta que done
// se cierre. Al terminar por EOF deja el error del scanner en el segundo canal
// antes de cerrar el primero.
func scanLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		scanErr <- sc.Err()
	}()
	return lines, scanErr
}

// handleLine ejecuta un comando; devuelve true si el usuario pidió salir.
func handleLine(ctx context.Context, s *calculator.Session, out io.Writer, line string) bool {
	switch {
	case line == "":
	case line == "quit" || line == "exit":
		return true
	case line == "help":
		fmt.Fprintln(out, interactiveHelp)
	case line == "show":
		printFields(out, s)
	case line == "reset":
		printValidation(out, s.Reset())
	case line == "calc":
		if _, err := s.Calculate(ctx); err != nil {
			printValidation(out, err)
		}
	case strings.Contains(line, "="):
		name, value, _ := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		err := s.Set(name, strings.TrimSpace(value))
		if errors.Is(err, calculator.ErrUnknownField) {
			fmt.Fprintf(out, "  unknown field %q\n", name)
			return false
		}
		printValidation(out, err)
	default:
		fmt.Fprintf(out, "  unknown command %q (try help)\n", line)
	}
	return false
}

func printFields(out io.Writer, s *calculator.Session) {
	f := s.Fields()
	for _, name := range calculator.FieldNames() {
		v, _ := f.Get(name)
		fmt.Fprintf(out, "  %-17s %s\n", name, v)
	}
	state := "ready"
	if !s.CanCalculate() {
		state = "invalid"
	}
	fmt.Fprintf(out, "  [%s]\n", state)
}

func printValidation(out io.Writer, err error) {
	if err == nil {
		fmt.Fprintln(out, "  [ready]")
		return
	}
	var inErr *domain.InputError
	if errors.As(err, &inErr) {
		for _, m := range inErr.Messages() {
			fmt.Fprintf(out, "  - %s\n", m)
		}
		return
	}
	fmt.Fprintf(out, "  - %v\n", err)
}
