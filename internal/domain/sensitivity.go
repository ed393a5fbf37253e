package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction indica si la cuota de cobertura sube o baja respecto a la original.
type Direction string

const (
	DirectionDecrease Direction = "decrease"
	DirectionIncrease Direction = "increase"
)

// Window define la ventana de perturbaciones de la cuota secundaria.
type Window struct {
	Steps int             // pasos por dirección
	Step  decimal.Decimal // tamaño de cada paso
}

// DefaultWindow devuelve la ventana estándar: 5 pasos de 0.01 por dirección.
func DefaultWindow() Window {
	return Window{Steps: 5, Step: decimal.RequireFromString("0.01")}
}

// Validate comprueba que la ventana sea utilizable.
func (w Window) Validate() error {
	var errs fieldErrors
	if w.Steps < 1 {
		errs.add(FieldWindowSteps, "window steps must be at least 1")
	}
	if !w.Step.IsPositive() {
		errs.add(FieldWindowStep, "window step must be greater than 0")
	}
	return errs.err()
}

// VariationPoint es el resultado recalculado para una cuota perturbada.
type VariationPoint struct {
	Direction        Direction       `json:"direction"`
	OddsDelta        decimal.Decimal `json:"odds_delta"` // negativo en DirectionDecrease
	NewSecondaryOdds decimal.Decimal `json:"new_secondary_odds"`
	Outcome          OutcomeResult   `json:"outcome"`
}

// Sensitivity agrupa los puntos por dirección. Cada grupo va ordenado por
// |delta| creciente (el más cercano a la cuota original primero).
type Sensitivity struct {
	Decrease []VariationPoint `json:"decrease"`
	Increase []VariationPoint `json:"increase"`
}

// Len devuelve el total de puntos en ambos grupos.
func (s Sensitivity) Len() int {
	return len(s.Decrease) + len(s.Increase)
}

// SensitivityTable recalcula stake y resultado para cada cuota de la ventana.
//
// Bajadas: candidate = odds - step×i, se omite si candidate < MinOdds (el
// límite es inclusivo). Subidas: candidate = odds + step×i, sin límite superior.
// El rebate secundario es el de la petición original en todos los puntos.
func SensitivityTable(in WagerInputs, w Window) (Sensitivity, error) {
	if err := in.Validate(); err != nil {
		return Sensitivity{}, err
	}
	if err := w.Validate(); err != nil {
		return Sensitivity{}, err
	}

	var s Sensitivity
	for i := 1; i <= w.Steps; i++ {
		delta := w.Step.Mul(decimal.NewFromInt(int64(i)))
		candidate := in.SecondaryOdds.Sub(delta)
		if candidate.LessThan(MinOdds) {
			continue
		}
		p, err := variation(in, DirectionDecrease, delta.Neg(), candidate)
		if err != nil {
			return Sensitivity{}, err
		}
		s.Decrease = append(s.Decrease, p)
	}

	for i := 1; i <= w.Steps; i++ {
		delta := w.Step.Mul(decimal.NewFromInt(int64(i)))
		p, err := variation(in, DirectionIncrease, delta, in.SecondaryOdds.Add(delta))
		if err != nil {
			return Sensitivity{}, err
		}
		s.Increase = append(s.Increase, p)
	}

	return s, nil
}

func variation(in WagerInputs, dir Direction, delta, odds decimal.Decimal) (VariationPoint, error) {
	out, err := hedge(in, odds)
	if err != nil {
		return VariationPoint{}, fmt.Errorf("%s %s: %w", dir, delta.StringFixed(2), err)
	}
	return VariationPoint{
		Direction:        dir,
		OddsDelta:        delta,
		NewSecondaryOdds: odds,
		Outcome:          out,
	}, nil
}
