package domain

import "github.com/shopspring/decimal"

var (
	// MinOdds es la cuota decimal mínima aceptada en ambos lados.
	MinOdds = decimal.RequireFromString("1.01")

	hundred = decimal.NewFromInt(100)
)

// WagerInputs son los cinco escalares de una petición de cálculo.
// Las tasas de rebate son fracciones en [0, 1].
type WagerInputs struct {
	PrimaryOdds         decimal.Decimal `json:"primary_odds"`
	PrimaryStake        decimal.Decimal `json:"primary_stake"`
	PrimaryRebateRate   decimal.Decimal `json:"primary_rebate_rate"`
	SecondaryOdds       decimal.Decimal `json:"secondary_odds"`
	SecondaryRebateRate decimal.Decimal `json:"secondary_rebate_rate"`
}

// NewWagerInputsFromPercent construye WagerInputs a partir de rebates en
// porcentaje (0-100), tal como llegan desde el formulario o la CLI.
func NewWagerInputsFromPercent(primaryOdds, primaryStake, primaryRebatePct, secondaryOdds, secondaryRebatePct decimal.Decimal) (WagerInputs, error) {
	in := WagerInputs{
		PrimaryOdds:         primaryOdds,
		PrimaryStake:        primaryStake,
		PrimaryRebateRate:   primaryRebatePct.Div(hundred),
		SecondaryOdds:       secondaryOdds,
		SecondaryRebateRate: secondaryRebatePct.Div(hundred),
	}
	if err := in.Validate(); err != nil {
		return WagerInputs{}, err
	}
	return in, nil
}

// Validate comprueba todos los rangos y reporta cada campo violado.
func (in WagerInputs) Validate() error {
	var errs fieldErrors
	checkOdds(&errs, FieldPrimaryOdds, "primary odds", in.PrimaryOdds)
	if !in.PrimaryStake.IsPositive() {
		errs.add(FieldPrimaryStake, "primary stake must be greater than 0")
	}
	checkRate(&errs, FieldPrimaryRebate, "primary rebate", in.PrimaryRebateRate)
	checkOdds(&errs, FieldSecondaryOdds, "secondary odds", in.SecondaryOdds)
	checkRate(&errs, FieldSecondaryRebate, "secondary rebate", in.SecondaryRebateRate)
	return errs.err()
}

func checkOdds(errs *fieldErrors, field, label string, odds decimal.Decimal) {
	if odds.LessThan(MinOdds) {
		errs.add(field, label+" must be at least "+MinOdds.StringFixed(2))
	}
}

// checkRate valida una fracción en [0, 1]; el mensaje se expresa en porcentaje
// porque es lo que ve el usuario.
func checkRate(errs *fieldErrors, field, label string, rate decimal.Decimal) {
	if rate.IsNegative() || rate.GreaterThan(one) {
		errs.add(field, label+" must be between 0 and 100%")
	}
}
