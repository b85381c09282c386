// Package config loads analysis settings from YAML files. Command-line
// flags layer on top: any flag set explicitly overrides the file value.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ebe-flow/internal/filter"
	"ebe-flow/internal/flow"
	"ebe-flow/internal/ingest"
)

// Flow configures the harmonic range and differential binning.
type Flow struct {
	VnMin   int     `yaml:"vnmin"`
	VnMax   int     `yaml:"vnmax"`
	PTWidth float64 `yaml:"pt_width"`
}

// Analysis is the root configuration document.
type Analysis struct {
	Format string        `yaml:"format"`
	Preset string        `yaml:"preset"`
	Filter filter.Config `yaml:"filter"`
	Flow   Flow          `yaml:"flow"`
}

// Default returns the configuration used when no file is given.
func Default() Analysis {
	return Analysis{
		Format: ingest.FormatAuto.String(),
		Flow: Flow{
			VnMin:   flow.DefaultVnMin,
			VnMax:   flow.DefaultVnMax,
			PTWidth: flow.DefaultPTWidth,
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file
// keep their default values; unknown keys are rejected.
func Load(path string) (Analysis, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration without compiling it.
func (c Analysis) Validate() error {
	if _, err := ingest.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Preset != "" {
		if _, err := filter.ExpandPreset(c.Filter, c.Preset); err != nil {
			return err
		}
	}
	if _, err := c.Filter.Build(); err != nil {
		return err
	}
	if c.Flow.VnMin < 1 || c.Flow.VnMax < c.Flow.VnMin {
		return fmt.Errorf("invalid harmonic range [%d, %d]", c.Flow.VnMin, c.Flow.VnMax)
	}
	if c.Flow.PTWidth <= 0 {
		return fmt.Errorf("invalid pT bin width %g", c.Flow.PTWidth)
	}
	return nil
}
