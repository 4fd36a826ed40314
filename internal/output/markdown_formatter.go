package output

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/pkg/money"
)

// MarkdownFormatter renders the report as GitHub-flavoured markdown. The
// console and html formatters build on its output.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

//go:embed templates/report.md.tmpl
var markdownTemplateSource string

// Functions are rebound per report so amounts use the report currency.
var markdownTemplate = template.Must(template.New("report").Funcs(templateFuncs(money.DefaultCurrency)).Parse(markdownTemplateSource))

func templateFuncs(currency string) template.FuncMap {
	return template.FuncMap{
		"curr":     func(v float64) string { return FormatCurrency(v, currency) },
		"pct":      FormatPercentage,
		"pctPlain": pctString,
	}
}

type summaryRow struct {
	Name    string
	Annual  float64
	Monthly float64
	Final   float64
}

type scenarioView struct {
	domain.ScenarioProjection
	Summary []summaryRow
}

type reportView struct {
	Currency  string
	Scenarios []scenarioView
	Insights  []string
	TaxNote   string
}

func newReportView(report *domain.Report) reportView {
	v := reportView{Currency: report.Currency, Insights: report.Insights, TaxNote: TaxNote()}
	if len(v.Insights) == 0 {
		v.Insights = DefaultInsights
	}
	for _, sc := range report.Scenarios {
		v.Scenarios = append(v.Scenarios, scenarioView{ScenarioProjection: sc, Summary: summaryRows(sc.Result)})
	}
	return v
}

func summaryRows(r *domain.ProjectionResult) []summaryRow {
	return []summaryRow{
		{domain.StrategyTBills, r.TBillAnnualReturn, r.TBillMonthly, r.TBillFinalValue},
		{domain.StrategyDividendStocks, r.StockAnnualReturn, r.StockMonthly, r.StockFinalValue},
		{domain.StrategyMixed, r.MixedAnnual, r.MixedMonthly, r.MixedFinalValue},
	}
}

func (m MarkdownFormatter) Format(report *domain.Report) ([]byte, error) {
	tmpl, err := markdownTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(templateFuncs(report.Currency))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newReportView(report)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
