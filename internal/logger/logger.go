package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// LoggerConfig controls the zerolog logger both front ends share. The default
// level is warn so log lines don't bleed into the rendered panels; --verbose
// lowers it to debug.
type LoggerConfig struct {
	Level  string `mapstructure:"level" json:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" json:"format,omitempty" validate:"omitempty,oneof=json console"`
}

// New builds a logger writing to stderr, so stdout stays reserved for the
// list output.
func New(cfg LoggerConfig) (zerolog.Logger, error) {
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse level: %w", err)
	}

	var w io.Writer = os.Stderr
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func (c *LoggerConfig) setDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Format == "" {
		c.Format = "console"
	}
}
