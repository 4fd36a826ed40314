package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVDetailedExporter provides the yearly value of every strategy per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Label", "TBills", "DividendStocks", "DividendStocksNoDiv", "MixedPortfolio"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(report) {
		r := sc.Result
		for i, row := range r.Comparison {
			rec := []string{
				sc.Name,
				intToString(row.Year),
				row.Label,
				wholeUnits(row.TBills),
				wholeUnits(row.DividendStocks),
				wholeUnits(r.StockSeries[i].ValueNoDiv),
				wholeUnits(row.MixedPortfolio),
			}
			if err := w.Write(rec); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
