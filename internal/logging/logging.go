package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Profile selects the baseline logger configuration.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Options controls logger construction. Zero values fall back to the profile defaults.
type Options struct {
	Level  string // trace, debug, info, warn, error, disabled
	Format string // console or json
	Out    io.Writer
}

// New builds a zerolog logger tagged with the app name.
func New(app string, profile Profile, opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if profile == ProfileTest {
		level = zerolog.DebugLevel
	}
	if lvl, ok := ParseLevel(opts.Level); ok {
		level = lvl
	}

	var w io.Writer = out
	if !strings.EqualFold(opts.Format, "json") {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    profile == ProfileTest,
		}
	}

	ctx := zerolog.New(w).Level(level).With().Str("app", app)
	if profile == ProfileRuntime {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// ParseLevel maps user-facing level names onto zerolog levels.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// Adapter exposes a zerolog logger through the printf-style interface the
// projection engine expects.
type Adapter struct {
	L zerolog.Logger
}

func (a Adapter) Debugf(format string, args ...any) { a.L.Debug().Msgf(format, args...) }
func (a Adapter) Infof(format string, args ...any)  { a.L.Info().Msgf(format, args...) }
func (a Adapter) Warnf(format string, args ...any)  { a.L.Warn().Msgf(format, args...) }
func (a Adapter) Errorf(format string, args ...any) { a.L.Error().Msgf(format, args...) }
