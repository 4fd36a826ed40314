// Package money renders projection figures for display. Amounts arrive as
// float64 whole currency units straight from the engine and may be non-finite.
package money

import (
	"fmt"
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the calculator's notional currency.
const DefaultCurrency = "KES"

// Formatter renders whole-unit amounts as "<CODE> 1,234,567".
type Formatter struct {
	code string
	f    *gomoney.Formatter
}

// NewFormatter creates a formatter for an ISO 4217 currency code known to go-money.
func NewFormatter(code string) (*Formatter, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := gomoney.GetCurrency(code)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency code %q", code)
	}
	thousand := cur.Thousand
	if thousand == "" {
		thousand = ","
	}
	return &Formatter{
		code: code,
		f:    gomoney.NewFormatter(0, cur.Decimal, thousand, code, "$ 1"),
	}, nil
}

// MustFormatter is NewFormatter for codes known to be valid.
func MustFormatter(code string) *Formatter {
	f, err := NewFormatter(code)
	if err != nil {
		panic(err)
	}
	return f
}

// KnownCurrency reports whether go-money knows the code.
func KnownCurrency(code string) bool {
	return gomoney.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// Code returns the currency code.
func (f *Formatter) Code() string { return f.code }

// Format renders v rounded to whole units.
func (f *Formatter) Format(v float64) string {
	if s, ok := nonFinite(v); ok {
		return f.code + " " + s
	}
	return f.f.Format(decimal.NewFromFloat(v).Round(0).IntPart())
}

// Percent renders a percentage with two decimals, e.g. "7.13%".
func Percent(v float64) string {
	return Fixed(v, 2) + "%"
}

// Fixed renders v with the given number of decimals.
func Fixed(v float64, places int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "+Inf", true
	case math.IsInf(v, -1):
		return "-Inf", true
	}
	return "", false
}
