// Package config resolves where and how the icon set is generated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/skycast/iconmaker/internal/icons"
	"github.com/skycast/iconmaker/internal/render"
)

const (
	EnvOutDir = "ICONMAKER_OUT"
	EnvConfig = "ICONMAKER_CONFIG"
	EnvDebug  = "ICONMAKER_DEBUG"

	DefaultOutDir = "assets/images"
)

// Config contains settings for one generator run.
// The zero-flag defaults reproduce the plain icon set in assets/images.
type Config struct {
	OutDir    string `yaml:"out_dir"`
	ICO       bool   `yaml:"ico"`
	SheetPath string `yaml:"sheet"`
	Preview   bool   `yaml:"preview"`
	Debug     bool   `yaml:"debug"`

	Gradient struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"gradient"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{OutDir: DefaultOutDir}
	cfg.Gradient.Start = render.Hex(render.GradientStart)
	cfg.Gradient.End = render.Hex(render.GradientEnd)
	return cfg
}

// DefaultConfigFromEnv returns Default with environment overrides applied.
// A config file named by ICONMAKER_CONFIG is loaded before the other variables.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfig); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overwrites cfg with ICONMAKER_OUT and ICONMAKER_DEBUG when set.
// Call it again after LoadFile so the environment keeps priority over files.
func (cfg *Config) ApplyEnv() error {
	if dir := os.Getenv(EnvOutDir); dir != "" {
		cfg.OutDir = dir
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	return nil
}

// LoadFile merges the YAML file at path into cfg. Keys absent from the file
// keep their current values.
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings a run cannot recover from.
func (cfg Config) Validate() error {
	if cfg.OutDir == "" {
		return errors.New("output directory must not be empty")
	}
	_, err := cfg.Theme()
	return err
}

// Theme builds the icon theme from the configured gradient.
func (cfg Config) Theme() (icons.Theme, error) {
	start, err := render.ParseHex(cfg.Gradient.Start)
	if err != nil {
		return icons.Theme{}, fmt.Errorf("gradient start: %w", err)
	}
	end, err := render.ParseHex(cfg.Gradient.End)
	if err != nil {
		return icons.Theme{}, fmt.Errorf("gradient end: %w", err)
	}
	return icons.Theme{GradientStart: start, GradientEnd: end}, nil
}
