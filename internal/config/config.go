// Package config loads host configuration from file, environment, and
// defaults.
package config

import (
	"fmt"

	"redfa/internal/render"
)

// Config is the top-level configuration for the redfa hosts.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Render RenderConfig `mapstructure:"render"`
}

// ServerConfig holds the web host settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	Dir       string `mapstructure:"dir"`
	DotBinary string `mapstructure:"dot_binary"`
	Format    string `mapstructure:"format"`
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen must not be empty")
	}
	if c.Render.Dir == "" {
		return fmt.Errorf("render.dir must not be empty")
	}
	if !render.ValidFormat(c.Render.Format) {
		return fmt.Errorf("render.format %q is not supported (png, svg)", c.Render.Format)
	}
	return nil
}

// Renderer builds a renderer from the configured settings.
func (c *Config) Renderer() *render.Renderer {
	return &render.Renderer{
		DotBinary: c.Render.DotBinary,
		Dir:       c.Render.Dir,
		Format:    c.Render.Format,
	}
}
