package output

import (
	"strings"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/pkg/money"
)

// Projector produces projection results; *calculation.ProjectionEngine satisfies it.
type Projector interface {
	Project(in domain.ProjectionInputs) *domain.ProjectionResult
}

// BuildReport projects each scenario and attaches its strategy analysis.
// Single-scenario reports carry insights tailored to that scenario.
func BuildReport(p Projector, currency string, scenarios []domain.Scenario) *domain.Report {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = money.DefaultCurrency
	}
	report := &domain.Report{Currency: currency, Scenarios: make([]domain.ScenarioProjection, 0, len(scenarios))}
	for _, sc := range scenarios {
		r := p.Project(sc.Inputs)
		report.Scenarios = append(report.Scenarios, domain.ScenarioProjection{
			Name:     sc.Name,
			Inputs:   sc.Inputs,
			Result:   r,
			Analysis: calculation.AnalyzeStrategies(r),
		})
	}
	if len(scenarios) == 1 {
		report.Insights = GenerateInsights(scenarios[0].Inputs)
	} else {
		report.Insights = append([]string(nil), DefaultInsights...)
	}
	return report
}
