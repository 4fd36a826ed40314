package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ calculation.Logger = Adapter{}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"DEBUG", zerolog.DebugLevel, true},
		{" warning ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.raw)
		assert.Equal(t, tt.ok, ok, "ParseLevel(%q) ok", tt.raw)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New("invcalc", ProfileRuntime, Options{Format: "json", Out: &buf})
	l.Info().Int("years", 5).Msg("projected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "invcalc", entry["app"])
	assert.Equal(t, "projected", entry["message"])
	assert.Equal(t, float64(5), entry["years"])
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New("invcalc", ProfileRuntime, Options{Level: "warn", Format: "json", Out: &buf})
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_TestProfileConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New("invcalc", ProfileTest, Options{Out: &buf})
	l.Debug().Msg("visible in tests")
	out := buf.String()
	assert.Contains(t, out, "visible in tests")
	assert.False(t, strings.Contains(out, "\x1b["), "test profile disables color")
}

func TestAdapter(t *testing.T) {
	var buf bytes.Buffer
	a := Adapter{L: New("invcalc", ProfileTest, Options{Format: "json", Out: &buf})}
	a.Debugf("cache hit %d", 1)
	a.Warnf("slow %s", "path")
	out := buf.String()
	assert.Contains(t, out, `"message":"cache hit 1"`)
	assert.Contains(t, out, `"level":"warn"`)
}
