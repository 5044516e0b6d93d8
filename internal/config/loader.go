package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional yaml file plus ITEMLS_* env
// overrides (ITEMLS_ENDPOINT, ITEMLS_PAGE_SIZE, ...). An empty path skips the
// file and uses defaults + env.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("endpoint", def.Endpoint)
	v.SetDefault("page_size", def.PageSize)
	v.SetDefault("timeout", def.Timeout)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("ITEMLS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}
