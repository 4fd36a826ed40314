package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
)

// AnalyzeStrategies ranks the strategies of a projection by final value and
// by reported annual income, and records any year where T-Bills and one of
// the equity-bearing strategies overtake each other. Ties go to the earlier
// strategy in display order.
func AnalyzeStrategies(r *domain.ProjectionResult) domain.StrategyAnalysis {
	var analysis domain.StrategyAnalysis
	var bestFinal, bestIncome float64

	for _, name := range domain.Strategies() {
		final, _ := r.FinalValue(name)
		income, _ := r.AnnualIncome(name)
		if analysis.BestFinalValue == "" || final > bestFinal {
			bestFinal = final
			analysis.BestFinalValue = name
		}
		if analysis.BestAnnualIncome == "" || income > bestIncome {
			bestIncome = income
			analysis.BestAnnualIncome = name
		}
	}

	tbills := r.Series(domain.StrategyTBills)
	for _, challenger := range []string{domain.StrategyDividendStocks, domain.StrategyMixed} {
		series := r.Series(challenger)
		// Series from the same result always align, so errors cannot occur here.
		if c, _ := FindCrossover(challenger, domain.StrategyTBills, series, tbills); c != nil {
			analysis.Crossovers = append(analysis.Crossovers, c)
		}
		if c, _ := FindCrossover(domain.StrategyTBills, challenger, tbills, series); c != nil {
			analysis.Crossovers = append(analysis.Crossovers, c)
		}
	}
	return analysis
}
