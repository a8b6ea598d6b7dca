// Package config handles primvartool configuration loading and management.
package config

import "github.com/Faultbox/meshresample/pkg/primvar"

// Config holds all tool settings.
type Config struct {
	Resample ResampleConfig `yaml:"resample"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ResampleConfig holds resampling defaults.
type ResampleConfig struct {
	Method        primvar.Method        `yaml:"method"`
	Target        primvar.Interpolation `yaml:"target"`         // used when a command omits the target domain
	CacheMappings bool                  `yaml:"cache_mappings"` // reuse fan-in maps across variables of one mesh
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Resample: ResampleConfig{
			Method:        primvar.Average,
			Target:        primvar.Vertex,
			CacheMappings: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
