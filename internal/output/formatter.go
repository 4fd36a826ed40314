package output

import (
	"sort"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	MarkdownFormatter{},
	ConsoleFormatter{Style: DefaultConsoleStyle},
	ConsoleLiteFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
}

// extensions maps canonical formatter names to output file extensions.
var extensions = map[string]string{
	"markdown":     "md",
	"console":      "txt",
	"console-lite": "txt",
	"html":         "html",
	"json":         "json",
	"csv":          "csv",
	"detailed-csv": "csv",
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// WithConsoleStyle returns f with its glamour style replaced when f renders
// for the terminal. Other formatters are returned unchanged.
func WithConsoleStyle(f Formatter, style string) Formatter {
	if c, ok := f.(ConsoleFormatter); ok && style != "" {
		c.Style = style
		return c
	}
	return f
}

// Extension returns the file extension for a formatter name, defaulting to "txt".
func Extension(name string) string {
	if ext, ok := extensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "txt"
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"md":           "markdown",
	"terminal":     "console",
	"text":         "console-lite",
	"summary":      "console-lite",
	"csv-detailed": "detailed-csv",
	"csv-summary":  "csv",
	"html-report":  "html",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
