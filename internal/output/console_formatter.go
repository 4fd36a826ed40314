package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// DefaultConsoleStyle picks a dark or light glamour style from the terminal,
// and plain text when stdout is not a terminal.
const DefaultConsoleStyle = "auto"

const consoleWordWrap = 100

// ConsoleFormatter renders the markdown report for the terminal with glamour.
type ConsoleFormatter struct {
	Style string // glamour standard style name: auto, dark, light, notty, ascii, ...
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}
	style := c.Style
	if style == "" {
		style = DefaultConsoleStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(consoleWordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("console renderer: %w", err)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return []byte(out), nil
}

// ConsoleLiteFormatter provides a concise plain-text summary.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *domain.Report) ([]byte, error) {
	curr := func(v float64) string { return FormatCurrency(v, report.Currency) }
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Currency: %s\n", report.Currency)
	for _, sc := range report.Scenarios {
		r := sc.Result
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s: Principal=%s Years=%d Split=%s%%/%s%%\n",
			sc.Name, curr(sc.Inputs.Principal), sc.Inputs.Years,
			pctString(sc.Inputs.PortfolioSplitPct), pctString(sc.Inputs.StockSplitPct()))
		for _, row := range summaryRows(r) {
			fmt.Fprintf(&buf, "  %-16s Annual=%s Monthly=%s Final=%s\n",
				row.Name+":", curr(row.Annual), curr(row.Monthly), curr(row.Final))
		}
		fmt.Fprintf(&buf, "  Best final value: %s; best annual income: %s\n",
			sc.Analysis.BestFinalValue, sc.Analysis.BestAnnualIncome)
		for _, x := range sc.Analysis.Crossovers {
			fmt.Fprintf(&buf, "  %s overtakes %s in Year %d\n", x.Leader, x.Trailer, x.Year)
		}
	}
	return buf.Bytes(), nil
}
