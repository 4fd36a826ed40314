package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/pkg/money"
	"gopkg.in/yaml.v3"
)

// ErrOutOfRange is wrapped by every input range violation.
var ErrOutOfRange = errors.New("input out of range")

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML, JSON or TOML file. The format is
// chosen by extension; anything other than .toml is read as YAML, which
// also accepts JSON.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file domain.ScenarioFile
	if isTOML(filename) {
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if strings.TrimSpace(file.Currency) == "" {
		file.Currency = money.DefaultCurrency
	}
	file.Currency = strings.ToUpper(strings.TrimSpace(file.Currency))

	if err := ip.ValidateScenarioFile(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &file, nil
}

// ValidateScenarioFile validates the loaded scenarios
func (ip *InputParser) ValidateScenarioFile(file *domain.ScenarioFile) error {
	if !money.KnownCurrency(file.Currency) {
		return fmt.Errorf("unknown currency %q", file.Currency)
	}
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i, scenario := range file.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			return fmt.Errorf("scenario %d validation failed: scenario name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, name)
		}
		seen[name] = true
		if err := ValidateInputs(scenario.Inputs); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", name, err)
		}
	}
	return nil
}

// fieldRange is one input control's accepted range and granularity.
type fieldRange struct {
	name     string
	min, max float64
	step     float64
	value    func(domain.ProjectionInputs) float64
}

// inputRanges mirrors the calculator form: minimum, maximum and step of each control.
var inputRanges = []fieldRange{
	{"principal", 50000, math.Inf(1), 50000, func(in domain.ProjectionInputs) float64 { return in.Principal }},
	{"tbill_yield_pct", 0, 30, 0.5, func(in domain.ProjectionInputs) float64 { return in.TBillYieldPct }},
	{"dividend_yield_pct", 0, 20, 0.5, func(in domain.ProjectionInputs) float64 { return in.DividendYieldPct }},
	{"stock_appreciation_pct", -20, 50, 1, func(in domain.ProjectionInputs) float64 { return in.StockAppreciationPct }},
	{"years", 1, 30, 1, func(in domain.ProjectionInputs) float64 { return float64(in.Years) }},
	{"portfolio_split_pct", 0, 100, 5, func(in domain.ProjectionInputs) float64 { return in.PortfolioSplitPct }},
}

// ValidateInputs applies the input collector's domain ranges. The engine
// itself accepts anything; this is the boundary that keeps it in range.
func ValidateInputs(in domain.ProjectionInputs) error {
	for _, r := range inputRanges {
		v := r.value(in)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrOutOfRange, r.name)
		}
		if v < r.min || v > r.max {
			if math.IsInf(r.max, 1) {
				return fmt.Errorf("%w: %s must be at least %s, got %s", ErrOutOfRange, r.name, formatNumber(r.min), formatNumber(v))
			}
			return fmt.Errorf("%w: %s must be between %s and %s, got %s", ErrOutOfRange, r.name, formatNumber(r.min), formatNumber(r.max), formatNumber(v))
		}
		if !onStep(v-r.min, r.step) {
			return fmt.Errorf("%w: %s must be in steps of %s, got %s", ErrOutOfRange, r.name, formatNumber(r.step), formatNumber(v))
		}
	}
	return nil
}

func onStep(offset, step float64) bool {
	const tolerance = 1e-9
	rem := math.Mod(offset, step)
	return rem < tolerance || step-rem < tolerance
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Coerce turns raw form values into inputs. Fields that are missing or do
// not parse as finite numbers keep their default.
func Coerce(raw map[string]string) domain.ProjectionInputs {
	in := domain.DefaultInputs()
	coerceFloat(raw, "principal", &in.Principal)
	coerceFloat(raw, "tbill_yield_pct", &in.TBillYieldPct)
	coerceFloat(raw, "dividend_yield_pct", &in.DividendYieldPct)
	coerceFloat(raw, "stock_appreciation_pct", &in.StockAppreciationPct)
	coerceFloat(raw, "portfolio_split_pct", &in.PortfolioSplitPct)
	if s, ok := raw["years"]; ok {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			in.Years = v
		}
	}
	return in
}

func coerceFloat(raw map[string]string, key string, dst *float64) {
	s, ok := raw[key]
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	*dst = v
}

// CreateExampleConfiguration creates an example scenario file
func (ip *InputParser) CreateExampleConfiguration() *domain.ScenarioFile {
	conservative := domain.DefaultInputs()
	conservative.PortfolioSplitPct = 80

	growth := domain.DefaultInputs()
	growth.StockAppreciationPct = 15
	growth.Years = 10
	growth.PortfolioSplitPct = 30

	return &domain.ScenarioFile{
		Currency: money.DefaultCurrency,
		Scenarios: []domain.Scenario{
			{Name: "Balanced 5 Year", Inputs: domain.DefaultInputs()},
			{Name: "Income Focus", Inputs: conservative},
			{Name: "Growth 10 Year", Inputs: growth},
		},
	}
}

// SaveScenarioFile writes a scenario file as TOML or YAML according to its extension.
func SaveScenarioFile(file *domain.ScenarioFile, filename string) error {
	var data []byte
	if isTOML(filename) {
		var buf strings.Builder
		if err := toml.NewEncoder(&buf).Encode(file); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		data = []byte(buf.String())
	} else {
		b, err := yaml.Marshal(file)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		data = b
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

func isTOML(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}
