package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audseed"
)

// fileConfig mirrors audseed.Config for YAML binding. Pointer fields tell
// absent keys apart from zero values, so a config file only overrides what
// it names.
type fileConfig struct {
	SampleRate *int     `yaml:"sample_rate"`
	Duration   *string  `yaml:"duration"`
	NumLSB     *int     `yaml:"num_lsb"`
	Length     *int     `yaml:"length"`
	TargetPeak *float32 `yaml:"target_peak"`
	Device     *string  `yaml:"device"`
	SavePath   *string  `yaml:"save_path"`
}

// loadConfig overlays the YAML file at path onto cfg.
func loadConfig(path string, cfg *audseed.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := overlayConfig(f, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// overlayConfig decodes a YAML config from r and applies the keys it names
// onto cfg. Unknown keys are rejected so typos surface instead of silently
// keeping defaults. Duration values use time.ParseDuration syntax.
func overlayConfig(r io.Reader, cfg *audseed.Config) error {
	var fc fileConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	if fc.SampleRate != nil {
		cfg.SampleRate = *fc.SampleRate
	}

	if fc.Duration != nil {
		d, err := time.ParseDuration(*fc.Duration)
		if err != nil {
			return fmt.Errorf("duration: %w", err)
		}

		cfg.Duration = d
	}

	if fc.NumLSB != nil {
		cfg.NumLSB = *fc.NumLSB
	}

	if fc.Length != nil {
		cfg.Length = *fc.Length
	}

	if fc.TargetPeak != nil {
		cfg.TargetPeak = *fc.TargetPeak
	}

	if fc.Device != nil {
		cfg.Device = *fc.Device
	}

	if fc.SavePath != nil {
		cfg.SavePath = *fc.SavePath
	}

	return nil
}
