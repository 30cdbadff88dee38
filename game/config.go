package game

import (
	"errors"
	"fmt"

	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

var ErrInvalidConfig = errors.New("game: invalid config")

// Config collects the settings the binaries expose as flags.
type Config struct {
	Rows int
	Cols int
	// Seed selects the piece sequence; 0 picks one from the clock.
	Seed     uint64
	CellSize int
	FPS      int
	Debug    bool
	LogLevel string
}

func DefaultConfig() Config {
	return Config{
		Rows:     tetris.DefaultRows,
		Cols:     tetris.DefaultCols,
		CellSize: 30,
		FPS:      60,
		LogLevel: "info",
	}
}

// Validate reports every problem with c, joined and wrapped with
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if c.Rows < 4 || c.Rows > 100 {
		errs = append(errs, fmt.Errorf("rows %d outside [4, 100]", c.Rows))
	}
	if c.Cols < 4 || c.Cols > 100 {
		errs = append(errs, fmt.Errorf("cols %d outside [4, 100]", c.Cols))
	}
	if c.CellSize < 4 {
		errs = append(errs, fmt.Errorf("cell size %d is below 4px", c.CellSize))
	}
	if c.FPS < 1 || c.FPS > 1000 {
		errs = append(errs, fmt.Errorf("fps %d outside [1, 1000]", c.FPS))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// SessionOptions translates c into session options.
func (c Config) SessionOptions(logger zerolog.Logger) []tetris.Option {
	opts := []tetris.Option{
		tetris.WithDimensions(c.Rows, c.Cols),
		tetris.WithLogger(logger),
	}
	if c.Seed != 0 {
		opts = append(opts, tetris.WithSeed(c.Seed))
	}
	return opts
}
