package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".redfa"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for redfa settings.
const envPrefix = "REDFA"

// Defaults.
const (
	DefaultListen    = ":8080"
	DefaultRenderDir = "static/images"
	DefaultDotBinary = "dot"
	DefaultFormat    = "png"
)

// Load reads configuration from file, env vars, and defaults. If configPath
// is non-empty it names an explicit config file; otherwise the config file is
// searched in the CWD and $HOME. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.listen", DefaultListen)
	v.SetDefault("render.dir", DefaultRenderDir)
	v.SetDefault("render.dot_binary", DefaultDotBinary)
	v.SetDefault("render.format", DefaultFormat)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
