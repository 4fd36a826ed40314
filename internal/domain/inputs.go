package domain

// Fixed withholding rates applied to each instrument's income.
// They are not user configurable.
const (
	TBillTaxRate    = 0.0
	DividendTaxRate = 0.05
)

// Strategy names used for series labels, table rows and analysis.
const (
	StrategyTBills         = "T-Bills"
	StrategyDividendStocks = "Dividend Stocks"
	StrategyMixed          = "Mixed Portfolio"
)

// Allocation leg names for the mixed portfolio breakdown.
const (
	AllocationTBills = "T-Bills"
	AllocationStocks = "Stocks"
)

// Strategies returns the strategy names in display order.
func Strategies() []string {
	return []string{StrategyTBills, StrategyDividendStocks, StrategyMixed}
}

// ProjectionInputs holds the six scalar assumptions a projection is computed from.
// It is a comparable value type so it can key a memo cache directly.
type ProjectionInputs struct {
	Principal            float64 `yaml:"principal" json:"principal" toml:"principal"`
	TBillYieldPct        float64 `yaml:"tbill_yield_pct" json:"tbill_yield_pct" toml:"tbill_yield_pct"`
	DividendYieldPct     float64 `yaml:"dividend_yield_pct" json:"dividend_yield_pct" toml:"dividend_yield_pct"`
	StockAppreciationPct float64 `yaml:"stock_appreciation_pct" json:"stock_appreciation_pct" toml:"stock_appreciation_pct"`
	Years                int     `yaml:"years" json:"years" toml:"years"`
	PortfolioSplitPct    float64 `yaml:"portfolio_split_pct" json:"portfolio_split_pct" toml:"portfolio_split_pct"`
}

// DefaultInputs returns the assumptions the calculator starts with.
func DefaultInputs() ProjectionInputs {
	return ProjectionInputs{
		Principal:            1000000,
		TBillYieldPct:        16.5,
		DividendYieldPct:     7.5,
		StockAppreciationPct: 10,
		Years:                5,
		PortfolioSplitPct:    50,
	}
}

// StockSplitPct is the share of principal allocated to the equity leg of the mixed portfolio.
func (in ProjectionInputs) StockSplitPct() float64 {
	return 100 - in.PortfolioSplitPct
}

// Scenario is a named set of inputs in a scenario file.
type Scenario struct {
	Name   string           `yaml:"name" json:"name" toml:"name"`
	Inputs ProjectionInputs `yaml:"inputs" json:"inputs" toml:"inputs"`
}

// ScenarioFile is the top-level document loaded by the config package.
type ScenarioFile struct {
	Currency  string     `yaml:"currency" json:"currency" toml:"currency"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios" toml:"scenarios"`
}
