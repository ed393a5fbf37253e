package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation es el resultado transitorio de una petición: se renderiza y se descarta.
type Calculation struct {
	ID           string        `json:"id"`
	CalculatedAt time.Time     `json:"calculated_at"`
	Inputs       WagerInputs   `json:"inputs"`
	Outcome      OutcomeResult `json:"outcome"`
	Sensitivity  Sensitivity   `json:"sensitivity"`
}

// ProfitClass es la categoría de presentación derivada del signo del beneficio.
type ProfitClass int

const (
	ProfitNeutral ProfitClass = iota
	ProfitPositive
	ProfitNegative
)

func (c ProfitClass) String() string {
	switch c {
	case ProfitPositive:
		return "positive"
	case ProfitNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Icon devuelve el marcador corto usado en las tablas de consola.
func (c ProfitClass) Icon() string {
	switch c {
	case ProfitPositive:
		return "[+]"
	case ProfitNegative:
		return "[-]"
	default:
		return "[=]"
	}
}

// ClassifyProfit devuelve la categoría según el signo de profit.
// Resumen y filas de la tabla usan siempre esta función.
func ClassifyProfit(profit decimal.Decimal) ProfitClass {
	switch profit.Sign() {
	case 1:
		return ProfitPositive
	case -1:
		return ProfitNegative
	default:
		return ProfitNeutral
	}
}
