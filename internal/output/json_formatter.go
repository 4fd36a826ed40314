package output

import (
	"encoding/json"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON. Reports with
// non-finite figures (negative horizons) cannot be encoded and return an error.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
