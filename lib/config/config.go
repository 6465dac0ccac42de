package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server reads at startup. Defaults reproduce
// the behavior the bot client was developed against; a config file or
// MOCKAPI_* environment variables only override them.
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	ParserDelayMinMs int `mapstructure:"parser_delay_min_ms"`
	ParserDelayMaxMs int `mapstructure:"parser_delay_max_ms"`
	TableDelayMinMs  int `mapstructure:"table_delay_min_ms"`
	TableDelayMaxMs  int `mapstructure:"table_delay_max_ms"`

	CurrencyFailureRate float64 `mapstructure:"currency_failure_rate"`
}

// Load reads the configuration. configPath may be empty, in which case only
// defaults and environment variables apply; a missing file at a given path
// is an error, since the caller asked for it explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("log_level", "info")
	v.SetDefault("parser_delay_min_ms", 1000)
	v.SetDefault("parser_delay_max_ms", 4000)
	v.SetDefault("table_delay_min_ms", 500)
	v.SetDefault("table_delay_max_ms", 1500)
	v.SetDefault("currency_failure_rate", 0.2)

	v.SetEnvPrefix("MOCKAPI")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	if cfg.ParserDelayMaxMs < cfg.ParserDelayMinMs {
		return nil, fmt.Errorf("parser delay window is inverted: [%d, %d)", cfg.ParserDelayMinMs, cfg.ParserDelayMaxMs)
	}
	if cfg.TableDelayMaxMs < cfg.TableDelayMinMs {
		return nil, fmt.Errorf("table delay window is inverted: [%d, %d)", cfg.TableDelayMinMs, cfg.TableDelayMaxMs)
	}
	if cfg.CurrencyFailureRate < 0 || cfg.CurrencyFailureRate > 1 {
		return nil, fmt.Errorf("currency_failure_rate must be within [0, 1], got %v", cfg.CurrencyFailureRate)
	}

	return &cfg, nil
}

// ParserDelayWindow returns the start_parser delay bounds as durations.
func (c *Config) ParserDelayWindow() (time.Duration, time.Duration) {
	return time.Duration(c.ParserDelayMinMs) * time.Millisecond,
		time.Duration(c.ParserDelayMaxMs) * time.Millisecond
}

// TableDelayWindow returns the start_table_process delay bounds.
func (c *Config) TableDelayWindow() (time.Duration, time.Duration) {
	return time.Duration(c.TableDelayMinMs) * time.Millisecond,
		time.Duration(c.TableDelayMaxMs) * time.Millisecond
}

// Addr is the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
