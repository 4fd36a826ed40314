package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ProjectionEngine runs projections with optional tracing and memoization.
// The zero value is not usable; construct with NewProjectionEngine.
type ProjectionEngine struct {
	Logger Logger
	memo   *Memo
}

// NewProjectionEngine creates an engine with a no-op logger and no cache.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// NewProjectionEngineWithMemo creates an engine that caches up to size results.
func NewProjectionEngineWithMemo(size int) *ProjectionEngine {
	e := NewProjectionEngine()
	e.memo = NewMemo(size)
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = orNop(l)
}

// Project returns the projection for in, from the cache when one is configured.
func (pe *ProjectionEngine) Project(in domain.ProjectionInputs) *domain.ProjectionResult {
	log := orNop(pe.Logger)
	if pe.memo != nil {
		if r, ok := pe.memo.Get(in); ok {
			log.Debugf("projection cache hit: %+v", in)
			return r
		}
	}
	r := Project(in)
	log.Debugf("projected %d years: tbill=%.0f stock=%.0f mixed=%.0f",
		in.Years, r.TBillFinalValue, r.StockFinalValue, r.MixedFinalValue)
	if pe.memo != nil {
		pe.memo.Add(in, r)
	}
	return r
}

// Project computes all three strategy projections for in. It is pure and
// performs no validation: out-of-domain inputs propagate through the
// arithmetic (a negative horizon yields empty series and NaN final values).
func Project(in domain.ProjectionInputs) *domain.ProjectionResult {
	tbill := tbillLeg(in.Principal, in.TBillYieldPct, in.Years)
	stock, price := stockLeg(in.Principal, in.DividendYieldPct, in.StockAppreciationPct, in.Years)
	tbillAmount, stockAmount := splitPrincipal(in.Principal, in.PortfolioSplitPct)
	mixed := mixedLeg(in.Principal, tbillAmount, stockAmount, in.TBillYieldPct, in.DividendYieldPct, in.StockAppreciationPct, in.Years)

	r := &domain.ProjectionResult{Inputs: in}

	n := len(tbill)
	r.TBillSeries = make([]domain.SeriesPoint, n)
	r.StockSeries = make([]domain.StockPoint, n)
	r.MixedSeries = make([]domain.SeriesPoint, n)
	r.Comparison = make([]domain.ComparisonRow, n)
	for year := 0; year < n; year++ {
		label := yearLabel(year)
		r.TBillSeries[year] = domain.SeriesPoint{Year: year, Label: label, Value: RoundCurrency(tbill[year])}
		r.StockSeries[year] = domain.StockPoint{
			Year:       year,
			Label:      label,
			Value:      RoundCurrency(stock[year]),
			ValueNoDiv: RoundCurrency(price[year]),
		}
		r.MixedSeries[year] = domain.SeriesPoint{Year: year, Label: label, Value: RoundCurrency(mixed[year])}
		r.Comparison[year] = domain.ComparisonRow{
			Year:           year,
			Label:          label,
			TBills:         r.TBillSeries[year].Value,
			DividendStocks: r.StockSeries[year].Value,
			MixedPortfolio: r.MixedSeries[year].Value,
		}
	}

	tbillAnnual := tbillIncome(in.Principal, in.TBillYieldPct)
	stockAnnual := dividendIncome(in.Principal, in.DividendYieldPct)
	mixedAnnual := tbillIncome(tbillAmount, in.TBillYieldPct) + dividendIncome(stockAmount, in.DividendYieldPct)

	r.TBillAnnualReturn = RoundCurrency(tbillAnnual)
	r.StockAnnualReturn = RoundCurrency(stockAnnual)
	r.TBillMonthly = monthly(tbillAnnual)
	r.StockMonthly = monthly(stockAnnual)
	r.MixedAnnual = RoundCurrency(mixedAnnual)
	r.MixedMonthly = monthly(mixedAnnual)

	r.TBillFinalValue = RoundCurrency(last(tbill))
	r.StockFinalValue = RoundCurrency(last(stock))
	r.MixedFinalValue = RoundCurrency(last(mixed))
	r.StockCapitalGain = RoundCurrency(last(price) - in.Principal)

	r.IncomeComparison = incomeComparison(in)
	r.Allocation = []domain.AllocationSlice{
		{Name: domain.AllocationTBills, Percent: in.PortfolioSplitPct, Amount: RoundCurrency(tbillAmount)},
		{Name: domain.AllocationStocks, Percent: in.StockSplitPct(), Amount: RoundCurrency(stockAmount)},
	}
	return r
}

func yearLabel(year int) string {
	return fmt.Sprintf("Year %d", year)
}

// last returns the final balance, or NaN for an empty series.
func last(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[len(values)-1]
}
