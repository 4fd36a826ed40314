package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// nowFunc stamps report file names and the html footer.
var nowFunc = time.Now

// SetNowFunc overrides the clock used for report timestamps and returns a
// function restoring the previous one.
func SetNowFunc(f func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = f
	return func() { nowFunc = prev }
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, report *domain.Report, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("investment_report_%s_%s.%s", f.Name(), nowFunc().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport writes the report in the named format, or every registered
// format for "all", and returns the written paths.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, f := range builtInFormatters {
			p, err := WriteFormatted(f, report, dir, Extension(f.Name()))
			if err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
		return paths, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	p, err := WriteFormatted(f, report, dir, Extension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

// UnsupportedFormatError wraps ErrUnsupportedFormat with the known names and aliases.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
