package domain

// SeriesPoint is one year of a strategy's value series.
type SeriesPoint struct {
	Year  int     `json:"year"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// StockPoint is one year of the dividend stock series. Value includes the
// after-tax dividends added each year; ValueNoDiv is the pure price balance.
type StockPoint struct {
	Year       int     `json:"year"`
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	ValueNoDiv float64 `json:"value_no_div"`
}

// ComparisonRow joins the three strategies for a single year (chart data).
type ComparisonRow struct {
	Year           int     `json:"year"`
	Label          string  `json:"label"`
	TBills         float64 `json:"tbills"`
	DividendStocks float64 `json:"dividend_stocks"`
	MixedPortfolio float64 `json:"mixed_portfolio"`
}

// IncomeRow is one instrument in the annual income and tax comparison.
type IncomeRow struct {
	Type             string  `json:"type"`
	Gross            float64 `json:"gross"`
	Tax              float64 `json:"tax"`
	Net              float64 `json:"net"`
	EffectiveRatePct float64 `json:"effective_rate_pct"`
}

// AllocationSlice is one leg of the mixed portfolio split.
type AllocationSlice struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

// ProjectionResult is the full engine output for one set of inputs.
// All currency values are rounded to whole units. A result may be shared
// between callers through the memo cache and must be treated as read-only.
type ProjectionResult struct {
	Inputs ProjectionInputs `json:"inputs"`

	TBillSeries []SeriesPoint   `json:"tbill_series"`
	StockSeries []StockPoint    `json:"stock_series"`
	MixedSeries []SeriesPoint   `json:"mixed_series"`
	Comparison  []ComparisonRow `json:"comparison"`

	TBillAnnualReturn float64 `json:"tbill_annual_return"`
	StockAnnualReturn float64 `json:"stock_annual_return"`
	TBillMonthly      float64 `json:"tbill_monthly"`
	StockMonthly      float64 `json:"stock_monthly"`
	TBillFinalValue   float64 `json:"tbill_final_value"`
	StockFinalValue   float64 `json:"stock_final_value"`
	MixedFinalValue   float64 `json:"mixed_final_value"`
	MixedAnnual       float64 `json:"mixed_annual"`
	MixedMonthly      float64 `json:"mixed_monthly"`
	StockCapitalGain  float64 `json:"stock_capital_gain"`

	IncomeComparison []IncomeRow       `json:"income_comparison"`
	Allocation       []AllocationSlice `json:"allocation"`
}

// FinalValue returns the final-year value for a strategy name, and false for unknown names.
func (r *ProjectionResult) FinalValue(strategy string) (float64, bool) {
	switch strategy {
	case StrategyTBills:
		return r.TBillFinalValue, true
	case StrategyDividendStocks:
		return r.StockFinalValue, true
	case StrategyMixed:
		return r.MixedFinalValue, true
	}
	return 0, false
}

// AnnualIncome returns the reported net annual income for a strategy name.
func (r *ProjectionResult) AnnualIncome(strategy string) (float64, bool) {
	switch strategy {
	case StrategyTBills:
		return r.TBillAnnualReturn, true
	case StrategyDividendStocks:
		return r.StockAnnualReturn, true
	case StrategyMixed:
		return r.MixedAnnual, true
	}
	return 0, false
}

// Series returns a strategy's value series as plain points. The stock series
// is reduced to its dividend-inclusive value.
func (r *ProjectionResult) Series(strategy string) []SeriesPoint {
	switch strategy {
	case StrategyTBills:
		return r.TBillSeries
	case StrategyMixed:
		return r.MixedSeries
	case StrategyDividendStocks:
		out := make([]SeriesPoint, len(r.StockSeries))
		for i, p := range r.StockSeries {
			out[i] = SeriesPoint{Year: p.Year, Label: p.Label, Value: p.Value}
		}
		return out
	}
	return nil
}

// Crossover marks the first year one strategy's value overtakes another's.
type Crossover struct {
	Leader   string  `json:"leader"`
	Trailer  string  `json:"trailer"`
	Year     int     `json:"year"`
	Fraction float64 `json:"fraction"` // position inside the year where the lines cross, 0..1
	At       float64 `json:"at"`       // interpolated leader value at the crossing
}

// StrategyAnalysis summarizes which strategy wins on each measure.
type StrategyAnalysis struct {
	BestFinalValue   string       `json:"best_final_value"`
	BestAnnualIncome string       `json:"best_annual_income"`
	Crossovers       []*Crossover `json:"crossovers,omitempty"`
}

// ScenarioProjection is a named projection inside a report.
type ScenarioProjection struct {
	Name     string            `json:"name"`
	Inputs   ProjectionInputs  `json:"inputs"`
	Result   *ProjectionResult `json:"result"`
	Analysis StrategyAnalysis  `json:"analysis"`
}

// Report is what output formatters render.
type Report struct {
	Currency  string               `json:"currency"`
	Scenarios []ScenarioProjection `json:"scenarios"`
	Insights  []string             `json:"insights"`
}
