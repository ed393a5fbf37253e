package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// exampleInputs: 2.00 / 1000 / 5% contra 1.90 / 2%.
func exampleInputs() WagerInputs {
	return WagerInputs{
		PrimaryOdds:         d("2.00"),
		PrimaryStake:        d("1000"),
		PrimaryRebateRate:   d("0.05"),
		SecondaryOdds:       d("1.90"),
		SecondaryRebateRate: d("0.02"),
	}
}

func f(v decimal.Decimal) float64 {
	return v.InexactFloat64()
}

// --- SecondaryStake ---

func TestSecondaryStake_Example(t *testing.T) {
	// 1000 × 2.00 × 1.05 = 2100 → 2100 / 1.90 = 1105.263158
	stake, err := SecondaryStake(d("2.00"), d("1000"), d("0.05"), d("1.90"))
	require.NoError(t, err)
	assert.InDelta(t, 1105.263158, f(stake), 1e-6)
}

func TestSecondaryStake_NoRebate(t *testing.T) {
	stake, err := SecondaryStake(d("2.50"), d("100"), decimal.Zero, d("2.50"))
	require.NoError(t, err)
	assert.True(t, d("100").Equal(stake), "got %s", stake)
}

func TestSecondaryStake_ZeroOddsIsDivisionUndefined(t *testing.T) {
	_, err := SecondaryStake(d("2.00"), d("1000"), d("0.05"), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionUndefined)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestSecondaryStake_InvalidInput(t *testing.T) {
	cases := []struct {
		name                         string
		odds, stake, rate, secondary string
		field                        string
	}{
		{"primary odds below floor", "1.00", "100", "0", "1.90", FieldPrimaryOdds},
		{"zero stake", "2.00", "0", "0", "1.90", FieldPrimaryStake},
		{"negative rebate", "2.00", "100", "-0.01", "1.90", FieldPrimaryRebate},
		{"rebate above 100%", "2.00", "100", "1.01", "1.90", FieldPrimaryRebate},
		{"secondary odds below floor", "2.00", "100", "0", "1.005", FieldSecondaryOdds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SecondaryStake(d(tc.odds), d(tc.stake), d(tc.rate), d(tc.secondary))
			require.ErrorIs(t, err, ErrInvalidInput)

			var inErr *InputError
			require.True(t, errors.As(err, &inErr))
			require.Len(t, inErr.Fields, 1)
			assert.Equal(t, tc.field, inErr.Fields[0].Field)
		})
	}
}

// --- ComputeOutcome ---

func exampleOutcome(t *testing.T) OutcomeResult {
	t.Helper()
	in := exampleInputs()
	stake, err := SecondaryStake(in.PrimaryOdds, in.PrimaryStake, in.PrimaryRebateRate, in.SecondaryOdds)
	require.NoError(t, err)
	out, err := ComputeOutcome(OutcomeParams{
		PrimaryOdds:         in.PrimaryOdds,
		PrimaryStake:        in.PrimaryStake,
		PrimaryRebateRate:   in.PrimaryRebateRate,
		SecondaryOdds:       in.SecondaryOdds,
		SecondaryStake:      stake,
		SecondaryRebateRate: in.SecondaryRebateRate,
	})
	require.NoError(t, err)
	return out
}

func TestComputeOutcome_Example(t *testing.T) {
	out := exampleOutcome(t)

	assert.InDelta(t, 1105.263158, f(out.SecondaryStake), 1e-6)
	assert.InDelta(t, 2105.263158, f(out.TotalInvestment), 1e-6)
	assert.InDelta(t, 2000.0, f(out.PrimaryGrossReturn), 1e-9)
	assert.InDelta(t, 2100.0, f(out.SecondaryGrossReturn), 1e-6)
	assert.InDelta(t, 50.0, f(out.PrimaryRebateAmount), 1e-9)
	assert.InDelta(t, 22.105263, f(out.SecondaryRebateAmount), 1e-6)
	assert.InDelta(t, 2050.0, f(out.PrimaryTotalReturn), 1e-9)
	assert.InDelta(t, 2122.105263, f(out.SecondaryTotalReturn), 1e-6)
	assert.InDelta(t, 2122.105263, f(out.TotalReturn), 1e-6)
	assert.InDelta(t, 16.842105, f(out.TotalProfit), 1e-6)
	assert.InDelta(t, 0.80, f(out.ProfitPercentage), 1e-6)
	assert.Equal(t, ProfitPositive, out.ProfitClass())
}

func TestComputeOutcome_Invariants(t *testing.T) {
	out := exampleOutcome(t)
	in := exampleInputs()

	// suma exacta, sin deriva de redondeo
	assert.True(t, in.PrimaryStake.Add(out.SecondaryStake).Equal(out.TotalInvestment))
	assert.True(t, decimal.Max(out.PrimaryTotalReturn, out.SecondaryTotalReturn).Equal(out.TotalReturn))
	assert.True(t, out.TotalReturn.Sub(out.TotalInvestment).Equal(out.TotalProfit))
}

func TestComputeOutcome_PrimaryLegWins(t *testing.T) {
	// stake de cobertura pequeño → gana el total principal
	out, err := ComputeOutcome(OutcomeParams{
		PrimaryOdds:         d("3.00"),
		PrimaryStake:        d("100"),
		PrimaryRebateRate:   d("0.10"),
		SecondaryOdds:       d("1.50"),
		SecondaryStake:      d("50"),
		SecondaryRebateRate: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, d("310").Equal(out.TotalReturn), "got %s", out.TotalReturn)
	assert.True(t, d("160").Equal(out.TotalProfit), "got %s", out.TotalProfit)
}

func TestComputeOutcome_ZeroInvestmentGuard(t *testing.T) {
	out, err := ComputeOutcome(OutcomeParams{
		PrimaryOdds:         d("2.00"),
		PrimaryStake:        decimal.Zero,
		PrimaryRebateRate:   decimal.Zero,
		SecondaryOdds:       d("2.00"),
		SecondaryStake:      decimal.Zero,
		SecondaryRebateRate: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, out.TotalInvestment.IsZero())
	assert.True(t, out.ProfitPercentage.IsZero())
	assert.Equal(t, ProfitNeutral, out.ProfitClass())
}

func TestComputeOutcome_NegativeProfit(t *testing.T) {
	out, err := ComputeOutcome(OutcomeParams{
		PrimaryOdds:         d("1.50"),
		PrimaryStake:        d("100"),
		PrimaryRebateRate:   decimal.Zero,
		SecondaryOdds:       d("1.50"),
		SecondaryStake:      d("100"),
		SecondaryRebateRate: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, d("-50").Equal(out.TotalProfit), "got %s", out.TotalProfit)
	assert.True(t, d("-25").Equal(out.ProfitPercentage), "got %s", out.ProfitPercentage)
	assert.Equal(t, ProfitNegative, out.ProfitClass())
}

func TestComputeOutcome_RejectsNegativeStake(t *testing.T) {
	_, err := ComputeOutcome(OutcomeParams{
		PrimaryOdds:         d("2.00"),
		PrimaryStake:        d("100"),
		PrimaryRebateRate:   decimal.Zero,
		SecondaryOdds:       d("2.00"),
		SecondaryStake:      d("-1"),
		SecondaryRebateRate: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeOutcome_Idempotent(t *testing.T) {
	a := exampleOutcome(t)
	b := exampleOutcome(t)
	assert.Equal(t, a, b)
}

func TestSecondaryStake_IndependentOfSecondaryRebate(t *testing.T) {
	in := exampleInputs()
	stake, err := SecondaryStake(in.PrimaryOdds, in.PrimaryStake, in.PrimaryRebateRate, in.SecondaryOdds)
	require.NoError(t, err)

	for _, rate := range []string{"0", "0.02", "0.5", "1"} {
		in.SecondaryRebateRate = d(rate)
		calc, err := Calculate(in, DefaultWindow())
		require.NoError(t, err)
		assert.True(t, stake.Equal(calc.Outcome.SecondaryStake), "rate %s changed the stake", rate)
	}
}

// --- Calculate ---

func TestCalculate_AllOrNothing(t *testing.T) {
	in := exampleInputs()
	in.PrimaryStake = decimal.Zero

	calc, err := Calculate(in, DefaultWindow())
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, Calculation{}, calc)
}

func TestCalculate_Example(t *testing.T) {
	calc, err := Calculate(exampleInputs(), DefaultWindow())
	require.NoError(t, err)

	assert.Equal(t, exampleInputs(), calc.Inputs)
	assert.InDelta(t, 16.842105, f(calc.Outcome.TotalProfit), 1e-6)
	assert.Len(t, calc.Sensitivity.Decrease, 5)
	assert.Len(t, calc.Sensitivity.Increase, 5)
	assert.Equal(t, 10, calc.Sensitivity.Len())
}

func TestCalculate_InvalidWindow(t *testing.T) {
	_, err := Calculate(exampleInputs(), Window{Steps: 0, Step: decimal.Zero})
	require.ErrorIs(t, err, ErrInvalidInput)

	var inErr *InputError
	require.True(t, errors.As(err, &inErr))
	assert.Len(t, inErr.Fields, 2)
}
