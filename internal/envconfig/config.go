// Package envconfig reads simnet settings from the environment.
//
//   - LogLevel: log level (SIMNET_DEBUG)
//   - Seed: default weight-initialization seed (SIMNET_SEED)
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel returns the log level.
// Configurable via SIMNET_DEBUG.
// Values: 0/false = INFO (default), 1/true = DEBUG.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SIMNET_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// Seed returns the default seed for weight initialization.
// Configurable via SIMNET_SEED.
var Seed = Uint64("SIMNET_SEED", 0)

// Uint64 returns a function reading a uint64 with a default value.
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// EnvVar describes one environment variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every supported variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"SIMNET_DEBUG": {"SIMNET_DEBUG", LogLevel(), "Show additional debug information (e.g. SIMNET_DEBUG=1)"},
		"SIMNET_SEED":  {"SIMNET_SEED", Seed(), "Default seed for weight initialization"},
	}
}

// Var returns an environment variable stripped of surrounding quotes and spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
