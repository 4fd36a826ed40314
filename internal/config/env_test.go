package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, ".", s.OutputDir)
	assert.Equal(t, "KES", s.Currency)
	assert.Equal(t, ":8080", s.ListenAddr)
	assert.Equal(t, 128, s.MemoSize)
	assert.Equal(t, "auto", s.GlamourStyle)
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv("INVCALC_LOG_LEVEL", "debug")
	t.Setenv("INVCALC_LOG_FORMAT", "json")
	t.Setenv("INVCALC_CURRENCY", "usd")
	t.Setenv("INVCALC_MEMO_SIZE", "16")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, 16, s.MemoSize)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		key, value, errMsg string
	}{
		{"INVCALC_CURRENCY", "nope", "unknown currency"},
		{"INVCALC_LOG_FORMAT", "xml", "INVCALC_LOG_FORMAT"},
		{"INVCALC_MEMO_SIZE", "-1", "cannot be negative"},
		{"INVCALC_MEMO_SIZE", "many", "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadSettings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
