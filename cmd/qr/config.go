package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/unixdj/qrgrid"
	"github.com/unixdj/qrgrid/coding"
)

// config holds settings read from the configuration file and the
// environment.  Command line flags override both.
type config struct {
	Level      string `yaml:"level" env:"QR_LEVEL"`
	Version    int    `yaml:"version" env:"QR_VERSION"` // 0: smallest that fits
	Mask       int    `yaml:"mask" env:"QR_MASK"`       // -1: lowest penalty
	Mode       string `yaml:"mode" env:"QR_MODE"`       // empty: most compact
	Format     string `yaml:"format" env:"QR_FORMAT"`   // empty: utf8 on a TTY, png otherwise
	Scale      int    `yaml:"scale" env:"QR_SCALE"`
	Border     int    `yaml:"border" env:"QR_BORDER"`
	Foreground string `yaml:"foreground" env:"QR_FOREGROUND"`
	Background string `yaml:"background" env:"QR_BACKGROUND"`
}

func defaults() *config {
	return &config{
		Level:  "m",
		Mask:   int(qr.AutoMask),
		Scale:  4,
		Border: 4,
	}
}

// loadConfig returns the defaults overridden by the YAML file at path,
// if path is not empty, and by environ.
func loadConfig(path string, environ map[string]string) (*config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// options converts the encoding settings into qr.Options.
func (cfg *config) options() (qr.Options, error) {
	o := qr.Options{Version: qr.Version(cfg.Version)}
	l, err := coding.ParseLevel(cfg.Level)
	if err != nil {
		return o, err
	}
	o = o.WithLevel(l)
	if o.Version != qr.AutoVersion && !o.Version.Valid() {
		return o, fmt.Errorf("%w %d", qr.ErrVersion, cfg.Version)
	}
	if m := qr.Mask(cfg.Mask); m != qr.AutoMask {
		if !m.Valid() {
			return o, fmt.Errorf("%w %d", qr.ErrMask, cfg.Mask)
		}
		o = o.WithMask(m)
	}
	if cfg.Mode != "" && cfg.Mode != "auto" {
		if o.Mode, err = coding.ParseMode(cfg.Mode); err != nil {
			return o, err
		}
	}
	if cfg.Scale < 1 {
		return o, fmt.Errorf("invalid scale %d", cfg.Scale)
	}
	if cfg.Border < 0 {
		return o, fmt.Errorf("invalid border %d", cfg.Border)
	}
	return o, nil
}
