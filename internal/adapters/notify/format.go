package notify

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// separators son el separador de miles y el decimal de un locale.
type separators struct {
	thousand string
	decimal  string
}

var (
	sepComma = separators{thousand: ",", decimal: "."} // 1,234.56
	sepDot   = separators{thousand: ".", decimal: ","} // 1.234,56
	sepSpace = separators{thousand: " ", decimal: ","} // 1 234,56
)

var decimalHundred = decimal.NewFromInt(100)

// localeSeparators mapea el idioma base del tag a sus separadores.
var localeSeparators = map[string]separators{
	"zh": sepComma,
	"en": sepComma,
	"ja": sepComma,
	"ko": sepComma,
	"de": sepDot,
	"es": sepDot,
	"it": sepDot,
	"pt": sepDot,
	"id": sepDot,
	"nl": sepDot,
	"fr": sepSpace,
	"ru": sepSpace,
	"pl": sepSpace,
}

// Formatter convierte importes y porcentajes a texto de presentación:
// signo explícito, dos decimales y separador de miles del locale.
type Formatter struct {
	sep separators
}

// NewFormatter crea un Formatter para un tag tipo "zh-CN" o "de_DE".
// Locales desconocidos usan coma para miles y punto decimal.
func NewFormatter(locale string) Formatter {
	base := strings.ToLower(locale)
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	sep, ok := localeSeparators[base]
	if !ok {
		sep = sepComma
	}
	return Formatter{sep: sep}
}

// Money formatea un importe con signo: "+1,105.26", "-16.84".
// El signo sale del valor sin redondear, igual que la clase de beneficio.
// La parte entera se agrupa sobre big.Int, sin pasar por float64.
func (f Formatter) Money(v decimal.Decimal) string {
	sign := "+"
	if v.IsNegative() {
		sign = "-"
	}
	rounded := v.Abs().Round(2)
	fixed := rounded.StringFixed(2)
	cents := fixed[len(fixed)-2:]

	grouped := humanize.BigComma(rounded.Truncate(0).BigInt())
	if f.sep.thousand != "," {
		grouped = strings.ReplaceAll(grouped, ",", f.sep.thousand)
	}
	return sign + grouped + f.sep.decimal + cents
}

// Percent formatea un porcentaje ya multiplicado por 100: "+0.80%".
func (f Formatter) Percent(v decimal.Decimal) string {
	return f.Money(v) + "%"
}

// Delta formatea el cambio de cuota: "+0.01", "-0.03".
func (f Formatter) Delta(v decimal.Decimal) string {
	if v.IsPositive() {
		return "+" + v.StringFixed(2)
	}
	return v.StringFixed(2)
}

// Odds formatea una cuota decimal con dos decimales.
func (f Formatter) Odds(v decimal.Decimal) string {
	return v.StringFixed(2)
}
