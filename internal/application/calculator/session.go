package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alejandrodnm/hedgecalc/internal/domain"
	"github.com/alejandrodnm/hedgecalc/internal/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUnknownField se devuelve al actualizar un campo que no existe.
var ErrUnknownField = errors.New("unknown field")

// Mensaje genérico cuando se pide calcular con campos inválidos.
const msgCheckInputs = "please check the inputs"

// Fields son los cinco valores crudos del formulario, tal como los escribe el
// usuario. Los rebates van en porcentaje (0-100).
type Fields struct {
	PrimaryOdds        string
	PrimaryStake       string
	PrimaryRebatePct   string
	SecondaryOdds      string
	SecondaryRebatePct string
}

// FieldNames devuelve los nombres aceptados por Session.Set, en orden de formulario.
func FieldNames() []string {
	return []string{
		domain.FieldPrimaryOdds,
		domain.FieldPrimaryStake,
		domain.FieldPrimaryRebate,
		domain.FieldSecondaryOdds,
		domain.FieldSecondaryRebate,
	}
}

func (f *Fields) ptr(name string) *string {
	switch name {
	case domain.FieldPrimaryOdds:
		return &f.PrimaryOdds
	case domain.FieldPrimaryStake:
		return &f.PrimaryStake
	case domain.FieldPrimaryRebate:
		return &f.PrimaryRebatePct
	case domain.FieldSecondaryOdds:
		return &f.SecondaryOdds
	case domain.FieldSecondaryRebate:
		return &f.SecondaryRebatePct
	default:
		return nil
	}
}

// Set asigna el valor crudo de un campo; false si el nombre no existe.
func (f *Fields) Set(name, raw string) bool {
	p := f.ptr(name)
	if p == nil {
		return false
	}
	*p = raw
	return true
}

// Get devuelve el valor crudo de un campo.
func (f Fields) Get(name string) (string, bool) {
	p := f.ptr(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Parse convierte los campos a WagerInputs. Si algún campo no es numérico se
// reportan esos; si todos lo son, se reportan todos los fuera de rango.
func (f Fields) Parse() (domain.WagerInputs, error) {
	var bad []domain.FieldError
	values := make(map[string]decimal.Decimal, 5)
	for _, name := range FieldNames() {
		raw, _ := f.Get(name)
		v, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			bad = append(bad, domain.FieldError{Field: name, Message: label(name) + " must be a number"})
			continue
		}
		values[name] = v
	}
	if len(bad) > 0 {
		return domain.WagerInputs{}, &domain.InputError{Fields: bad}
	}

	return domain.NewWagerInputsFromPercent(
		values[domain.FieldPrimaryOdds],
		values[domain.FieldPrimaryStake],
		values[domain.FieldPrimaryRebate],
		values[domain.FieldSecondaryOdds],
		values[domain.FieldSecondaryRebate],
	)
}

func label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// Config controla una sesión.
type Config struct {
	Defaults Fields
	Window   domain.Window
}

// Session es el adaptador entre la entrada del usuario y el motor: mantiene el
// estado de los campos, revalida en cada cambio y calcula bajo demanda.
// No es segura para uso concurrente; se usa desde un único bucle de entrada.
type Session struct {
	cfg      Config
	fields   Fields
	renderer ports.Renderer
	notifier ports.Notifier

	validationErr error

	now   func() time.Time
	newID func() string
}

// NewSession crea una sesión con los campos inicializados a cfg.Defaults.
func NewSession(cfg Config, renderer ports.Renderer, notifier ports.Notifier) *Session {
	s := &Session{
		cfg:      cfg,
		fields:   cfg.Defaults,
		renderer: renderer,
		notifier: notifier,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	_ = s.revalidate()
	return s
}

// Fields devuelve una copia del estado actual.
func (s *Session) Fields() Fields {
	return s.fields
}

// Set actualiza un campo y revalida el formulario completo. Devuelve el error
// de validación resultante (nil si el formulario es válido).
func (s *Session) Set(name, raw string) error {
	if !s.fields.Set(name, raw) {
		return fmt.Errorf("calculator.Set: %w: %q", ErrUnknownField, name)
	}
	return s.revalidate()
}

// Reset restaura los valores por defecto.
func (s *Session) Reset() error {
	s.fields = s.cfg.Defaults
	return s.revalidate()
}

// Validation devuelve el error de validación del estado actual.
func (s *Session) Validation() error {
	return s.validationErr
}

// CanCalculate indica si el formulario es válido.
func (s *Session) CanCalculate() bool {
	return s.validationErr == nil
}

func (s *Session) revalidate() error {
	_, err := s.fields.Parse()
	s.validationErr = err
	return err
}

// Calculate valida, ejecuta el motor y renderiza. Los errores de validación y
// de cálculo se notifican también por el Notifier.
func (s *Session) Calculate(ctx context.Context) (domain.Calculation, error) {
	in, err := s.fields.Parse()
	s.validationErr = err
	if err != nil {
		slog.Warn("calculation rejected", "err", err)
		s.notifier.Error(msgCheckInputs)
		return domain.Calculation{}, fmt.Errorf("calculator.Calculate: %w", err)
	}

	calc, err := domain.Calculate(in, s.cfg.Window)
	if err != nil {
		slog.Error("calculation failed", "err", err)
		s.notifier.Error("calculation failed: " + err.Error())
		return domain.Calculation{}, fmt.Errorf("calculator.Calculate: %w", err)
	}
	calc.ID = s.newID()
	calc.CalculatedAt = s.now()

	slog.Debug("calculation complete",
		"calc_id", calc.ID,
		"secondary_stake", calc.Outcome.SecondaryStake.StringFixed(6),
		"total_profit", calc.Outcome.TotalProfit.StringFixed(6),
		"profit_class", calc.Outcome.ProfitClass().String(),
		"decrease_points", len(calc.Sensitivity.Decrease),
		"increase_points", len(calc.Sensitivity.Increase),
	)

	if err := s.renderer.Render(ctx, calc); err != nil {
		s.notifier.Error("render failed: " + err.Error())
		return domain.Calculation{}, fmt.Errorf("calculator.Calculate: render: %w", err)
	}

	s.notifier.Success(fmt.Sprintf("hedge %s at odds %s",
		calc.Outcome.SecondaryStake.StringFixed(2), calc.Inputs.SecondaryOdds.StringFixed(2)))
	return calc, nil
}
