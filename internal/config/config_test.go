// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/solve"
)

var allKeys = []string{
	"GRAPH_FILE", "SEED", "STRATEGY", "MAX_STEPS", "LOG_LEVEL",
	"LOG_FORMAT", "RENDER", "RENDER_OUTPUT", "METRICS_DUMP",
}

// clearEnv unsets every HAMTOUR_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		key := Prefix + "_" + k
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(key) })
		}
		_ = os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.GraphFile)
	assert.Empty(t, cfg.Seed)
	assert.Equal(t, "direct", cfg.Strategy)
	assert.Equal(t, solve.Direct, cfg.StrategyValue())
	assert.Zero(t, cfg.MaxSteps)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "none", cfg.Render)
	assert.Equal(t, "-", cfg.RenderOutput)
	assert.False(t, cfg.MetricsDump)
}

func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("HAMTOUR_STRATEGY", "divide")
	t.Setenv("HAMTOUR_SEED", "3")
	t.Setenv("HAMTOUR_MAX_STEPS", "1000")
	t.Setenv("HAMTOUR_RENDER", "svg")
	t.Setenv("HAMTOUR_METRICS_DUMP", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, solve.DivideAndConquer, cfg.StrategyValue())
	assert.Equal(t, "3", cfg.Seed)
	assert.Equal(t, 1000, cfg.MaxSteps)
	assert.Equal(t, "svg", cfg.Render)
	assert.True(t, cfg.MetricsDump)
}

func TestLoad_DotenvDoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("HAMTOUR_SEED", "from-env")

	path := filepath.Join(t.TempDir(), "hamtour.env")
	content := "HAMTOUR_SEED=from-file\nHAMTOUR_GRAPH_FILE=graphs/ring.hcl\nHAMTOUR_LOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Seed)
	assert.Equal(t, "graphs/ring.hcl", cfg.GraphFile)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MissingDotenv(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoad_BadNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("HAMTOUR_MAX_STEPS", "lots")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Strategy: "direct", Render: "none", LogFormat: "console"}
	require.NoError(t, base.Validate())

	bad := base
	bad.Strategy = "genetic"
	assert.ErrorIs(t, bad.Validate(), solve.ErrUnknownStrategy)

	bad = base
	bad.MaxSteps = -1
	assert.ErrorIs(t, bad.Validate(), ErrNegativeMaxSteps)

	bad = base
	bad.Render = "png"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidRender)

	bad = base
	bad.LogFormat = "xml"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidLogFormat)
}
