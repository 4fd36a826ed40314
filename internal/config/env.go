package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rpgo/investment-calculator/pkg/money"
)

// Settings holds process-level options read from the environment.
type Settings struct {
	LogLevel     string `env:"INVCALC_LOG_LEVEL"     envDefault:"info"`
	LogFormat    string `env:"INVCALC_LOG_FORMAT"    envDefault:"console"`
	OutputDir    string `env:"INVCALC_OUTPUT_DIR"    envDefault:"."`
	Currency     string `env:"INVCALC_CURRENCY"      envDefault:"KES"`
	ListenAddr   string `env:"INVCALC_LISTEN_ADDR"   envDefault:":8080"`
	MemoSize     int    `env:"INVCALC_MEMO_SIZE"     envDefault:"128"`
	GlamourStyle string `env:"INVCALC_GLAMOUR_STYLE" envDefault:"auto"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if !money.KnownCurrency(s.Currency) {
		return Settings{}, fmt.Errorf("INVCALC_CURRENCY: unknown currency %q", s.Currency)
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return Settings{}, fmt.Errorf("INVCALC_LOG_FORMAT must be 'console' or 'json', got %q", s.LogFormat)
	}
	if s.MemoSize < 0 {
		return Settings{}, fmt.Errorf("INVCALC_MEMO_SIZE cannot be negative")
	}
	return s, nil
}
