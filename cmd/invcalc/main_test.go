package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/investment-calculator/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("INVCALC_LOG_LEVEL", "warn")
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestProject_ConsoleLite(t *testing.T) {
	out, _, err := execute(t, "project", "--format", "console-lite", "--name", "Reference")
	require.NoError(t, err)
	assert.Contains(t, out, "Reference: Principal=KES 1,000,000 Years=5 Split=50%/50%")
	assert.Contains(t, out, "Final=KES 2,146,000")
}

func TestProject_Flags(t *testing.T) {
	out, _, err := execute(t, "project", "-f", "csv", "--years", "10", "--split", "100", "--principal", "2000000")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Projection,KES,2000000,10,100,"), lines[1])
}

func TestProject_ValidationAndOverride(t *testing.T) {
	_, _, err := execute(t, "project", "-f", "markdown", "--years", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrOutOfRange)

	out, _, err := execute(t, "project", "-f", "markdown", "--years", "0", "--no-validate")
	require.NoError(t, err)
	assert.Contains(t, out, "| Year 0 | KES 1,000,000 | KES 1,000,000 | KES 1,000,000 |")
}

func TestProject_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "project", "-f", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestProject_Write(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "project", "-f", "json", "--write", "--out-dir", dir)
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.FileExists(t, path)
}

func TestExampleConfigAndRun(t *testing.T) {
	for _, name := range []string{"scenarios.yaml", "scenarios.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			out, _, err := execute(t, "example-config", "--out", path)
			require.NoError(t, err)
			assert.Equal(t, path, strings.TrimSpace(out))

			out, _, err = execute(t, "run", "--config", path, "-f", "console-lite")
			require.NoError(t, err)
			assert.Contains(t, out, "Balanced 5 Year:")
			assert.Contains(t, out, "Income Focus:")
			assert.Contains(t, out, "Growth 10 Year:")
		})
	}
}

func TestRun_WriteAll(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "scenarios.yaml")
	_, _, err := execute(t, "example-config", "--out", cfg)
	require.NoError(t, err)

	reports := filepath.Join(dir, "reports")
	out, _, err := execute(t, "run", "-c", cfg, "-f", "all", "--out-dir", reports)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 7)

	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestRun_MissingConfig(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestFormats(t *testing.T) {
	out, _, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "  markdown (.md)")
	assert.Contains(t, out, "  md -> markdown")
}

func TestBadEnvironment(t *testing.T) {
	t.Setenv("INVCALC_CURRENCY", "XXXX")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"formats"})
	assert.Error(t, cmd.Execute())
}
