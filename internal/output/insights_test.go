package output

import (
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInsights(t *testing.T) {
	require.Len(t, DefaultInsights, 5)
	assert.Equal(t,
		"Tax Advantage: T-Bills are completely tax-free, while dividends face 5% withholding tax, giving T-Bills an edge for pure income.",
		DefaultInsights[0])
}

func TestGenerateInsights(t *testing.T) {
	in := domain.DefaultInputs()
	in.PortfolioSplitPct = 80
	got := GenerateInsights(in)
	require.Len(t, got, 5)
	assert.Equal(t, DefaultInsights[0], got[0])
	assert.Contains(t, got[1], "10.00% a year")
	assert.Contains(t, got[1], "7.50% against 16.50% for T-Bills")
	assert.Contains(t, got[4], "80% T-Bills and 20% stocks")
}

func TestTaxNote(t *testing.T) {
	assert.Equal(t,
		"T-Bills enjoy 0% tax, while dividends are taxed at 5%. This gives T-Bills a significant advantage in net returns for pure income investors.",
		TaxNote())
}

type countingProjector struct {
	calls int
}

func (c *countingProjector) Project(in domain.ProjectionInputs) *domain.ProjectionResult {
	c.calls++
	return calculation.Project(in)
}

func TestBuildReport(t *testing.T) {
	p := &countingProjector{}
	report := BuildReport(p, " kes ", []domain.Scenario{{Name: "Only", Inputs: domain.DefaultInputs()}})
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, "KES", report.Currency)
	require.Len(t, report.Scenarios, 1)
	sc := report.Scenarios[0]
	assert.Equal(t, "Only", sc.Name)
	assert.Equal(t, sc.Inputs, sc.Result.Inputs)
	assert.Equal(t, domain.StrategyTBills, sc.Analysis.BestFinalValue)
	assert.Equal(t, GenerateInsights(domain.DefaultInputs()), report.Insights)
}

func TestBuildReport_MultipleScenariosUseDefaultInsights(t *testing.T) {
	engine := calculation.NewProjectionEngineWithMemo(4)
	report := BuildReport(engine, "", []domain.Scenario{
		{Name: "A", Inputs: domain.DefaultInputs()},
		{Name: "B", Inputs: domain.DefaultInputs()},
	})
	assert.Equal(t, "KES", report.Currency)
	assert.Equal(t, DefaultInsights, report.Insights)
	assert.Same(t, report.Scenarios[0].Result, report.Scenarios[1].Result, "memoized engine shares results")
}
