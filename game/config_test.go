package game_test

import (
	"bytes"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, game.DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*game.Config)
		want   string
	}{
		{"too few rows", func(c *game.Config) { c.Rows = 3 }, "rows 3"},
		{"too many cols", func(c *game.Config) { c.Cols = 101 }, "cols 101"},
		{"tiny cells", func(c *game.Config) { c.CellSize = 2 }, "cell size 2"},
		{"zero fps", func(c *game.Config) { c.FPS = 0 }, "fps 0"},
		{"bad level", func(c *game.Config) { c.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, game.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigValidateReportsEveryProblem(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Rows = 0
	cfg.Cols = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows 0")
	assert.Contains(t, err.Error(), "cols 0")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := game.NewLogger(&buf, "debug")
	require.NoError(t, err)

	logger.Debug().Int("rows", 20).Msg("hello")
	logger.Trace().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "rows=20")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "\x1b[", "no color outside a terminal")

	_, err = game.NewLogger(&buf, "shout")
	assert.Error(t, err)
}
