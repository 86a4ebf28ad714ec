// Package config loads vmssh runtime settings from VMSSH_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "VMSSH"

const (
	keyLogLevel       = "log_level"
	keyMultipassStart = "multipass_start"
)

// Config holds runtime settings. The machine table is not part of it.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level

	// MultipassStart issues `multipass start <alias>` before querying the instance address.
	MultipassStart bool
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyMultipassStart, false)

	level, err := parseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:       level,
		MultipassStart: v.GetBool(keyMultipassStart),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid %s_%s %q: %w", envPrefix, strings.ToUpper(keyLogLevel), s, err)
	}
	return level, nil
}
