package config

import "time"

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel int `mapstructure:"log_level"`
	} `mapstructure:"general"`

	Server struct {
		Bind string `mapstructure:"bind"`
		Mode string `mapstructure:"mode"`
	} `mapstructure:"server"`

	Upstream struct {
		BaseURL   string        `mapstructure:"base_url"`
		UserAgent string        `mapstructure:"user_agent"`
		Timeout   time.Duration `mapstructure:"timeout"`
	} `mapstructure:"upstream"`

	Defaults struct {
		Fuel string `mapstructure:"fuel"`
		City string `mapstructure:"city"`
	} `mapstructure:"defaults"`
}

// C holds the global configuration.
var C Config
