package config

import "time"

// ProxyConfig holds default proxy settings applied to every request.
type ProxyConfig struct {
	URL     string `yaml:"url"`
	NoProxy string `yaml:"no_proxy"`
}

// Config holds the application configuration.
type Config struct {
	Theme          string        `yaml:"theme"`
	DefaultTimeout time.Duration `yaml:"default_timeout"`
	// InsecureSkipVerify seeds the per-request certificate toggle. It is a
	// default for new forms, not a process-wide switch: each request carries
	// its own flag.
	InsecureSkipVerify bool        `yaml:"insecure_skip_verify"`
	Proxy              ProxyConfig `yaml:"proxy"`
	Editor             string      `yaml:"editor"`
	HistoryLimit       int         `yaml:"history_limit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:          "restdeck-dark",
		DefaultTimeout: 30 * time.Second,
		HistoryLimit:   100,
	}
}
