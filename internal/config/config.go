package config

import (
	"time"

	"github.com/ferhatb/itemls/internal/logger"
	"github.com/ferhatb/itemls/internal/pager"
)

// Config is the whole configuration surface: where to fetch from, how to
// page, and how to log.
type Config struct {
	Endpoint string              `mapstructure:"endpoint" validate:"required,url"`
	PageSize int                 `mapstructure:"page_size" validate:"min=1"`
	Timeout  time.Duration       `mapstructure:"timeout" validate:"min=1s"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
}

// Default returns the configuration used when no file and no env overrides
// are present.
func Default() Config {
	return Config{
		Endpoint: "https://jsonplaceholder.typicode.com/posts",
		PageSize: pager.DefaultPageSize,
		Timeout:  10 * time.Second,
	}
}
