package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Currency", "Principal", "Years", "SplitPct",
		"TBillAnnual", "TBillMonthly", "TBillFinal",
		"StockAnnual", "StockMonthly", "StockFinal", "StockCapitalGain",
		"MixedAnnual", "MixedMonthly", "MixedFinal",
		"BestFinalValue", "BestAnnualIncome"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(report) {
		r := sc.Result
		row := []string{
			sc.Name,
			report.Currency,
			wholeUnits(sc.Inputs.Principal),
			intToString(sc.Inputs.Years),
			pctString(sc.Inputs.PortfolioSplitPct),
			wholeUnits(r.TBillAnnualReturn),
			wholeUnits(r.TBillMonthly),
			wholeUnits(r.TBillFinalValue),
			wholeUnits(r.StockAnnualReturn),
			wholeUnits(r.StockMonthly),
			wholeUnits(r.StockFinalValue),
			wholeUnits(r.StockCapitalGain),
			wholeUnits(r.MixedAnnual),
			wholeUnits(r.MixedMonthly),
			wholeUnits(r.MixedFinalValue),
			sc.Analysis.BestFinalValue,
			sc.Analysis.BestAnnualIncome,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// sortedScenarios orders scenarios by name so CSV output is deterministic.
func sortedScenarios(report *domain.Report) []domain.ScenarioProjection {
	scenarios := append([]domain.ScenarioProjection(nil), report.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
