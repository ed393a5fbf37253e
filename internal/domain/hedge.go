package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// OutcomeParams son los argumentos de ComputeOutcome. A diferencia de
// WagerInputs, incluye el stake de cobertura ya calculado.
type OutcomeParams struct {
	PrimaryOdds         decimal.Decimal
	PrimaryStake        decimal.Decimal
	PrimaryRebateRate   decimal.Decimal
	SecondaryOdds       decimal.Decimal
	SecondaryStake      decimal.Decimal
	SecondaryRebateRate decimal.Decimal
}

// OutcomeResult es el resultado completo de una combinación primaria + cobertura.
// Ningún campo está redondeado: el redondeo a 2 decimales es cosa del renderer.
type OutcomeResult struct {
	SecondaryStake        decimal.Decimal `json:"secondary_stake"`
	TotalInvestment       decimal.Decimal `json:"total_investment"`
	PrimaryGrossReturn    decimal.Decimal `json:"primary_gross_return"`
	SecondaryGrossReturn  decimal.Decimal `json:"secondary_gross_return"`
	PrimaryRebateAmount   decimal.Decimal `json:"primary_rebate_amount"`
	SecondaryRebateAmount decimal.Decimal `json:"secondary_rebate_amount"`
	PrimaryTotalReturn    decimal.Decimal `json:"primary_total_return"`   // gross + rebate
	SecondaryTotalReturn  decimal.Decimal `json:"secondary_total_return"` // gross + rebate
	TotalReturn           decimal.Decimal `json:"total_return"`           // max(primary, secondary)
	TotalProfit           decimal.Decimal `json:"total_profit"`           // TotalReturn - TotalInvestment
	ProfitPercentage      decimal.Decimal `json:"profit_percentage"`      // 0 si TotalInvestment == 0
}

// ProfitClass clasifica el resultado para presentación.
func (o OutcomeResult) ProfitClass() ProfitClass {
	return ClassifyProfit(o.TotalProfit)
}

// --- Funciones de cálculo ---

// SecondaryStake calcula el stake de cobertura que iguala el retorno
// de la apuesta principal incluyendo su rebate.
//
// Fórmula:
//
//	effective = primaryStake × primaryOdds × (1 + primaryRebateRate)
//	stake     = effective / secondaryOdds
//
// El rebate secundario NO participa en el dimensionado; solo suma al
// beneficio realizado en ComputeOutcome.
func SecondaryStake(primaryOdds, primaryStake, primaryRebateRate, secondaryOdds decimal.Decimal) (decimal.Decimal, error) {
	if secondaryOdds.IsZero() {
		return decimal.Zero, ErrDivisionUndefined
	}

	var errs fieldErrors
	checkOdds(&errs, FieldPrimaryOdds, "primary odds", primaryOdds)
	if !primaryStake.IsPositive() {
		errs.add(FieldPrimaryStake, "primary stake must be greater than 0")
	}
	checkRate(&errs, FieldPrimaryRebate, "primary rebate", primaryRebateRate)
	checkOdds(&errs, FieldSecondaryOdds, "secondary odds", secondaryOdds)
	if err := errs.err(); err != nil {
		return decimal.Zero, err
	}

	effective := primaryStake.Mul(primaryOdds).Mul(one.Add(primaryRebateRate))
	return effective.Div(secondaryOdds), nil
}

// ComputeOutcome calcula inversión, retornos por lado, rebates y beneficio.
// Se asume que gana exactamente un lado: el retorno realizado es el mayor
// de los dos totales (bruto + rebate).
func ComputeOutcome(p OutcomeParams) (OutcomeResult, error) {
	var errs fieldErrors
	checkOdds(&errs, FieldPrimaryOdds, "primary odds", p.PrimaryOdds)
	if p.PrimaryStake.IsNegative() {
		errs.add(FieldPrimaryStake, "primary stake must not be negative")
	}
	checkRate(&errs, FieldPrimaryRebate, "primary rebate", p.PrimaryRebateRate)
	checkOdds(&errs, FieldSecondaryOdds, "secondary odds", p.SecondaryOdds)
	if p.SecondaryStake.IsNegative() {
		errs.add(FieldSecondaryStake, "secondary stake must not be negative")
	}
	checkRate(&errs, FieldSecondaryRebate, "secondary rebate", p.SecondaryRebateRate)
	if err := errs.err(); err != nil {
		return OutcomeResult{}, err
	}

	r := OutcomeResult{SecondaryStake: p.SecondaryStake}
	r.TotalInvestment = p.PrimaryStake.Add(p.SecondaryStake)

	r.PrimaryGrossReturn = p.PrimaryStake.Mul(p.PrimaryOdds)
	r.SecondaryGrossReturn = p.SecondaryStake.Mul(p.SecondaryOdds)

	r.PrimaryRebateAmount = p.PrimaryStake.Mul(p.PrimaryRebateRate)
	r.SecondaryRebateAmount = p.SecondaryStake.Mul(p.SecondaryRebateRate)

	r.PrimaryTotalReturn = r.PrimaryGrossReturn.Add(r.PrimaryRebateAmount)
	r.SecondaryTotalReturn = r.SecondaryGrossReturn.Add(r.SecondaryRebateAmount)

	r.TotalReturn = decimal.Max(r.PrimaryTotalReturn, r.SecondaryTotalReturn)
	r.TotalProfit = r.TotalReturn.Sub(r.TotalInvestment)

	r.ProfitPercentage = decimal.Zero
	if r.TotalInvestment.IsPositive() {
		r.ProfitPercentage = r.TotalProfit.Div(r.TotalInvestment).Mul(hundred)
	}

	return r, nil
}

// hedge encadena SecondaryStake y ComputeOutcome para unas cuotas de cobertura dadas.
func hedge(in WagerInputs, secondaryOdds decimal.Decimal) (OutcomeResult, error) {
	stake, err := SecondaryStake(in.PrimaryOdds, in.PrimaryStake, in.PrimaryRebateRate, secondaryOdds)
	if err != nil {
		return OutcomeResult{}, err
	}
	return ComputeOutcome(OutcomeParams{
		PrimaryOdds:         in.PrimaryOdds,
		PrimaryStake:        in.PrimaryStake,
		PrimaryRebateRate:   in.PrimaryRebateRate,
		SecondaryOdds:       secondaryOdds,
		SecondaryStake:      stake,
		SecondaryRebateRate: in.SecondaryRebateRate,
	})
}

// Calculate ejecuta una petición completa: stake de cobertura, resultado base
// y tabla de sensibilidad. Devuelve todo o nada.
func Calculate(in WagerInputs, w Window) (Calculation, error) {
	if err := in.Validate(); err != nil {
		return Calculation{}, fmt.Errorf("domain.Calculate: %w", err)
	}

	base, err := hedge(in, in.SecondaryOdds)
	if err != nil {
		return Calculation{}, fmt.Errorf("domain.Calculate: base outcome: %w", err)
	}

	sens, err := SensitivityTable(in, w)
	if err != nil {
		return Calculation{}, fmt.Errorf("domain.Calculate: %w", err)
	}

	return Calculation{
		Inputs:      in,
		Outcome:     base,
		Sensitivity: sens,
	}, nil
}
