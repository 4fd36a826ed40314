package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// DefaultInsights lists the key insights rendered at the end of every report.
var DefaultInsights = []string{
	"Tax Advantage: " + taxAdvantage(),
	"Total Returns: Dividend stocks can outperform through capital appreciation (stock price growth) even with lower dividend yields.",
	"Liquidity: T-Bills lock your money until maturity, while stocks can be sold anytime (though prices fluctuate).",
	"Risk: T-Bills are government-backed (very safe), while stocks carry market risk but offer growth potential.",
	"Diversification: A mixed portfolio balances safety (T-Bills) with growth potential (stocks) for optimal returns.",
}

// GenerateInsights tailors the key insights to a single set of inputs.
func GenerateInsights(in domain.ProjectionInputs) []string {
	return []string{
		"Tax Advantage: " + taxAdvantage(),
		fmt.Sprintf("Total Returns: Dividend stocks can outperform through capital appreciation (%s a year assumed here) even with a lower dividend yield (%s against %s for T-Bills).",
			FormatPercentage(in.StockAppreciationPct), FormatPercentage(in.DividendYieldPct), FormatPercentage(in.TBillYieldPct)),
		DefaultInsights[2],
		DefaultInsights[3],
		fmt.Sprintf("Diversification: A mixed portfolio of %s%% T-Bills and %s%% stocks balances safety (T-Bills) with growth potential (stocks).",
			pctString(in.PortfolioSplitPct), pctString(in.StockSplitPct())),
	}
}

// TaxNote is the remark shown under the income comparison.
func TaxNote() string {
	return fmt.Sprintf("T-Bills enjoy %s%% tax, while dividends are taxed at %s%%. This gives T-Bills a significant advantage in net returns for pure income investors.",
		pctString(domain.TBillTaxRate*100), pctString(domain.DividendTaxRate*100))
}

func taxAdvantage() string {
	tbill := "completely tax-free"
	if domain.TBillTaxRate != 0 {
		tbill = "taxed at " + pctString(domain.TBillTaxRate*100) + "%"
	}
	return fmt.Sprintf("T-Bills are %s, while dividends face %s%% withholding tax, giving T-Bills an edge for pure income.",
		tbill, pctString(domain.DividendTaxRate*100))
}

func pctString(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
