package calculation

import "github.com/rpgo/investment-calculator/internal/domain"

// grossYield is one year of income on base at pct percent.
func grossYield(base, pct float64) float64 {
	return base * (pct / 100)
}

// netOfTax removes withholding at rate from a gross amount.
func netOfTax(gross, rate float64) float64 {
	return gross * (1 - rate)
}

// tbillIncome is one year of after-tax T-Bill income on base.
func tbillIncome(base, yieldPct float64) float64 {
	return netOfTax(grossYield(base, yieldPct), domain.TBillTaxRate)
}

// dividendIncome is one year of after-tax dividend income on base. The
// dividend series uses it for every year's cash addition, so the reported
// annual dividend and the income table agree with the series by construction.
func dividendIncome(base, yieldPct float64) float64 {
	return netOfTax(grossYield(base, yieldPct), domain.DividendTaxRate)
}

// withheld is the rounded tax on gross. A zero rate withholds nothing,
// even on a non-finite gross.
func withheld(gross, rate float64) float64 {
	if rate == 0 {
		return 0
	}
	return RoundCurrency(gross * rate)
}

// incomeComparison builds the gross/tax/net table for a full principal
// invested in each single instrument.
func incomeComparison(in domain.ProjectionInputs) []domain.IncomeRow {
	tbillGross := grossYield(in.Principal, in.TBillYieldPct)
	divGross := grossYield(in.Principal, in.DividendYieldPct)

	return []domain.IncomeRow{
		{
			Type:             domain.StrategyTBills,
			Gross:            RoundCurrency(tbillGross),
			Tax:              withheld(tbillGross, domain.TBillTaxRate),
			Net:              RoundCurrency(tbillIncome(in.Principal, in.TBillYieldPct)),
			EffectiveRatePct: in.TBillYieldPct * (1 - domain.TBillTaxRate),
		},
		{
			Type:             domain.StrategyDividendStocks,
			Gross:            RoundCurrency(divGross),
			Tax:              withheld(divGross, domain.DividendTaxRate),
			Net:              RoundCurrency(dividendIncome(in.Principal, in.DividendYieldPct)),
			EffectiveRatePct: in.DividendYieldPct * (1 - domain.DividendTaxRate),
		},
	}
}
