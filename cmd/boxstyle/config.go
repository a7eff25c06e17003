package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/responsive"
	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file.
type Config struct {
	Breakpoints responsive.Breakpoints `yaml:"breakpoints"`
	Selector    string                 `yaml:"selector" validate:"required"`
	BlockType   string                 `yaml:"blockType" validate:"required"`
	Families    family.Table           `yaml:"families"`
	Elements    []string               `yaml:"elements"`
}

// DefaultConfig is used if no configuration file is given. Settings missing
// from a configuration file are taken from here.
func DefaultConfig() Config {
	return Config{
		Breakpoints: responsive.DefaultBreakpoints,
		Selector:    ".wp-block-accordion",
		BlockType:   "accordion",
		Families:    family.Accordion(),
		Elements:    family.AccordionElements,
	}
}

var configValidator = validator.New()

// loadConfig reads the configuration file at path. The empty path gives the
// default configuration.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot open configuration: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	tracer().Debugf("loaded configuration %s with %d families", path, len(cfg.Families))
	return cfg, nil
}

// Validate checks the configuration.
func (cfg Config) Validate() error {
	var errs []error
	if err := configValidator.Struct(cfg); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Breakpoints.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Families.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
