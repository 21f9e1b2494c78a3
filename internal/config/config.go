// Package config loads binstats defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/binstats/binstats"
	"github.com/skdltmxn/binstats/internal/demangle"
	"github.com/skdltmxn/binstats/internal/render"
)

// ErrInvalidRadix is returned for a radix nm cannot print.
var ErrInvalidRadix = errors.New("config: radix must be 8, 10 or 16")

// Config holds the defaults of every filter and output setting.
type Config struct {
	Pattern  string `yaml:"pattern"`
	Types    string `yaml:"types"`   // enabled type letters, empty enables all
	Exclude  string `yaml:"exclude"` // type letters disabled after Types
	Unknown  bool   `yaml:"unknown"`
	Local    bool   `yaml:"local"`
	Global   bool   `yaml:"global"`
	Demangle string `yaml:"demangle"`
	Radix    int    `yaml:"radix"`
	Format   string `yaml:"format"`
	Human    bool   `yaml:"human"`
	Limit    int    `yaml:"limit"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Unknown:  true,
		Local:    true,
		Global:   true,
		Demangle: demangle.StyleFull.String(),
		Radix:    10,
		Format:   render.FormatTable.String(),
	}
}

// Load reads the file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have a fixed set of choices.
func (c Config) Validate() error {
	switch c.Radix {
	case 8, 10, 16:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidRadix, c.Radix)
	}
	if _, err := demangle.ParseStyle(c.Demangle); err != nil {
		return err
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	_, err := c.Filter()
	return err
}

// Filter builds the filter state described by the config.
func (c Config) Filter() (binstats.FilterState, error) {
	f := binstats.AllEnabled()
	f.Pattern = c.Pattern
	f.Local = c.Local
	f.Global = c.Global

	if c.Types != "" {
		if err := f.OnlyTypes(c.Types); err != nil {
			return binstats.FilterState{}, err
		}
	}
	f.Unknown = f.Unknown && c.Unknown
	if err := f.SetTypes(c.Exclude, false); err != nil {
		return binstats.FilterState{}, err
	}
	return f, nil
}

// Demangler returns the demangler for the configured style.
func (c Config) Demangler() (demangle.Demangler, error) {
	style, err := demangle.ParseStyle(c.Demangle)
	if err != nil {
		return nil, err
	}
	return demangle.New(style), nil
}

// RenderOptions returns the output options for the configured format.
func (c Config) RenderOptions() (render.Options, error) {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{Format: format, Human: c.Human, Limit: c.Limit}, nil
}
