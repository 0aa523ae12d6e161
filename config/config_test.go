package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solvix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 100.0, cfg.Solver.SearchRange)
	assert.Equal(t, 1e-10, cfg.Solver.Tolerance)
	assert.Equal(t, 100, cfg.Solver.MaxIterations)
	assert.Equal(t, 200, cfg.Solver.Seeds)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "solver:\n  search_range: 50\n  seeds: 400\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Solver.SearchRange)
	assert.Equal(t, 400, cfg.Solver.Seeds)
	// Untouched fields keep their defaults.
	assert.Equal(t, 1e-10, cfg.Solver.Tolerance)
	assert.Equal(t, 100, cfg.Solver.MaxIterations)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, "solver:\n  search_range: -5\n")
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, "solver: [not, a, mapping\n")
	_, err = Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestScanConfigMapping(t *testing.T) {
	sc := Default().ScanConfig()
	assert.Equal(t, 100.0, sc.SearchRange)
	assert.Equal(t, 200, sc.Seeds)
}
