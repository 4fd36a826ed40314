package output

import (
	"strconv"

	"github.com/rpgo/investment-calculator/pkg/money"
)

// FormatCurrency formats whole-unit amounts in the given currency, e.g.
// "KES 1,000,000". Unknown codes fall back to the default currency.
func FormatCurrency(amount float64, code string) string {
	f, err := money.NewFormatter(code)
	if err != nil {
		f = money.MustFormatter(money.DefaultCurrency)
	}
	return f.Format(amount)
}

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string { return money.Percent(pct) }

func intToString(i int) string { return strconv.Itoa(i) }

// wholeUnits renders a rounded amount for machine-readable outputs.
func wholeUnits(v float64) string { return money.Fixed(v, 0) }
