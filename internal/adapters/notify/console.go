package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alejandrodnm/hedgecalc/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Renderer.
type Console struct {
	out    io.Writer
	format Formatter
	table  bool
}

// NewConsole crea un renderer que escribe a stdout.
func NewConsole(locale string, table bool) *Console {
	return &Console{out: os.Stdout, format: NewFormatter(locale), table: table}
}

// NewConsoleWriter crea un renderer para tests.
func NewConsoleWriter(w io.Writer, locale string, table bool) *Console {
	return &Console{out: w, format: NewFormatter(locale), table: table}
}

// Render imprime el resultado en el modo configurado.
func (c *Console) Render(_ context.Context, calc domain.Calculation) error {
	if c.table {
		c.printFull(calc)
	} else {
		c.printCompact(calc)
	}
	return nil
}

// printCompact imprime lo esencial en una línea por grupo.
func (c *Console) printCompact(calc domain.Calculation) {
	o := calc.Outcome
	in := calc.Inputs

	fmt.Fprintf(c.out, "[%s] hedge %s @%s | invest %s | return %s | profit %s (%s) %s\n",
		calc.CalculatedAt.Format("15:04:05"),
		c.format.Money(o.SecondaryStake), c.format.Odds(in.SecondaryOdds),
		c.format.Money(o.TotalInvestment), c.format.Money(o.TotalReturn),
		c.format.Money(o.TotalProfit), c.format.Percent(o.ProfitPercentage),
		o.ProfitClass().Icon())

	c.printCompactGroup("down", calc.Sensitivity.Decrease)
	c.printCompactGroup("up", calc.Sensitivity.Increase)
}

func (c *Console) printCompactGroup(label string, points []domain.VariationPoint) {
	if len(points) == 0 {
		fmt.Fprintf(c.out, "  %-4s no data\n", label)
		return
	}
	fmt.Fprintf(c.out, "  %-4s", label)
	for _, p := range points {
		fmt.Fprintf(c.out, " | %s %s %s",
			c.format.Odds(p.NewSecondaryOdds), c.format.Money(p.Outcome.TotalProfit), p.Outcome.ProfitClass().Icon())
	}
	fmt.Fprintln(c.out)
}

// printFull imprime el desglose del cálculo base y las dos tablas de variación.
func (c *Console) printFull(calc domain.Calculation) {
	in := calc.Inputs
	o := calc.Outcome

	fmt.Fprintf(c.out, "\n[%s] hedge calculation %s\n", calc.CalculatedAt.Format("15:04:05"), calc.ID)
	fmt.Fprintf(c.out, "  primary:   odds %s  stake %s  rebate %s\n",
		c.format.Odds(in.PrimaryOdds), c.format.Money(in.PrimaryStake), c.format.Percent(in.PrimaryRebateRate.Mul(decimalHundred)))
	fmt.Fprintf(c.out, "  secondary: odds %s  rebate %s\n\n",
		c.format.Odds(in.SecondaryOdds), c.format.Percent(in.SecondaryRebateRate.Mul(decimalHundred)))

	c.printSummary(o)

	fmt.Fprintf(c.out, "\n=== SECONDARY ODDS DECREASE ===\n")
	c.printVariationTable(calc.Sensitivity.Decrease)

	fmt.Fprintf(c.out, "\n=== SECONDARY ODDS INCREASE ===\n")
	c.printVariationTable(calc.Sensitivity.Increase)
	fmt.Fprintln(c.out)
}

// printSummary imprime el resultado base como tabla de dos columnas.
func (c *Console) printSummary(o domain.OutcomeResult) {
	class := o.ProfitClass()

	table := tablewriter.NewWriter(c.out)
	table.Header("Item", "Amount")
	table.Append("Secondary stake", c.format.Money(o.SecondaryStake))
	table.Append("Total investment", c.format.Money(o.TotalInvestment))
	table.Append("Primary return", c.format.Money(o.PrimaryGrossReturn))
	table.Append("Secondary return", c.format.Money(o.SecondaryGrossReturn))
	table.Append("Primary rebate", c.format.Money(o.PrimaryRebateAmount))
	table.Append("Secondary rebate", c.format.Money(o.SecondaryRebateAmount))
	table.Append("Total return", c.format.Money(o.TotalReturn))
	table.Append("Total profit "+class.Icon(), c.format.Money(o.TotalProfit))
	table.Append("Profit % "+class.Icon(), c.format.Percent(o.ProfitPercentage))
	table.Render()
}

// printVariationTable imprime un grupo de puntos; un grupo vacío muestra "no data".
func (c *Console) printVariationTable(points []domain.VariationPoint) {
	if len(points) == 0 {
		fmt.Fprintln(c.out, "  no data")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Change", "Odds", "Stake", "Investment", "Return", "Profit", "Profit %", "P/L")

	for _, p := range points {
		o := p.Outcome
		table.Append(
			c.format.Delta(p.OddsDelta),
			c.format.Odds(p.NewSecondaryOdds),
			c.format.Money(o.SecondaryStake),
			c.format.Money(o.TotalInvestment),
			c.format.Money(o.TotalReturn),
			c.format.Money(o.TotalProfit),
			c.format.Percent(o.ProfitPercentage),
			o.ProfitClass().String(),
		)
	}
	table.Render()
}
