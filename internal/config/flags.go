package config

import (
	"flag"

	"github.com/Faultbox/meshresample/pkg/primvar"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagMethod  = flag.String("method", "", "Default reduction method (average, min, max)")
	flagLogFile = flag.String("log-file", "", "Write JSON logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after the global flags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMethod != "" {
		m, err := primvar.ParseMethod(*flagMethod)
		if err != nil {
			return err
		}
		cfg.Resample.Method = m
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	return nil
}
