package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput indica un parámetro fuera de su rango documentado.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionUndefined indica una cuota de cobertura igual a cero.
	ErrDivisionUndefined = errors.New("division undefined: secondary odds is zero")
)

// Nombres de campo usados en FieldError y en la sesión interactiva.
const (
	FieldPrimaryOdds     = "primary_odds"
	FieldPrimaryStake    = "primary_stake"
	FieldPrimaryRebate   = "primary_rebate"
	FieldSecondaryOdds   = "secondary_odds"
	FieldSecondaryRebate = "secondary_rebate"
	FieldSecondaryStake  = "secondary_stake"
	FieldWindowSteps     = "window_steps"
	FieldWindowStep      = "window_step"
)

// FieldError describe un único campo inválido.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// InputError agrupa todos los campos inválidos de una misma petición.
// errors.Is(err, ErrInvalidInput) es true para cualquier *InputError.
type InputError struct {
	Fields []FieldError
}

func (e *InputError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Messages devuelve solo los mensajes, en orden de campo.
func (e *InputError) Messages() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.Message
	}
	return out
}

// fieldErrors acumula violaciones y produce nil si no hubo ninguna.
type fieldErrors []FieldError

func (fe *fieldErrors) add(field, msg string) {
	*fe = append(*fe, FieldError{Field: field, Message: msg})
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &InputError{Fields: fe}
}
