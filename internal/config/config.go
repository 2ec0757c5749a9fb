// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads the optional settings file shared by the datatools
// programs.
//
// A settings file is YAML, for example:
//
//	output_dir: reports
//	precision: 3
//	max_modes: 10
//	skip_words: [a, an, the]
//
// Fields that are omitted keep their default values. Settings given
// explicitly on the command line take precedence over the file.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/mds/mapset"
	"gopkg.in/yaml.v3"
)

// Default values for the settings.
const (
	DefaultPrecision = -1 // shortest exact representation
	DefaultMaxModes  = 0  // list all modes

	// MaxPrecision is the largest number of fractional digits accepted.
	MaxPrecision = 30
)

// Settings are the tunable options of the datatools programs.
type Settings struct {
	// OutputDir, if set, is the directory where reports with default names
	// are written. It is created if it does not exist.
	OutputDir string `yaml:"output_dir"`

	// Precision is the number of digits printed after the decimal point in
	// statistics reports, or -1 for the shortest exact representation.
	Precision int `yaml:"precision"`

	// MaxModes, if positive, limits the number of modes listed.
	MaxModes int `yaml:"max_modes"`

	// SkipWords are words excluded from word counts.
	SkipWords []string `yaml:"skip_words"`
}

// Default returns a Settings value populated with default values.
func Default() *Settings {
	return &Settings{
		Precision: DefaultPrecision,
		MaxModes:  DefaultMaxModes,
	}
}

// Load reads and parses the settings file at path. Missing fields are filled
// with defaults before validation. If path == "", Load returns the defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse parses settings from the YAML text in data. Unknown fields are
// reported as errors.
func Parse(data []byte) (*Settings, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate reports whether s contains valid settings.
func (s *Settings) Validate() error {
	if s.Precision < -1 || s.Precision > MaxPrecision {
		return fmt.Errorf("precision %d out of range [-1, %d]", s.Precision, MaxPrecision)
	}
	if s.MaxModes < 0 {
		return fmt.Errorf("max_modes %d is negative", s.MaxModes)
	}
	for i, w := range s.SkipWords {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("skip_words[%d] is empty", i)
		}
	}
	return nil
}

// OutputPath returns the path where a report should be written. If path is
// non-empty it is returned unchanged; otherwise the result is name in the
// output directory, creating the directory if necessary.
func (s *Settings) OutputPath(path, name string) (string, error) {
	if path != "" {
		return path, nil
	}
	if s.OutputDir == "" {
		return name, nil
	}
	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return filepath.Join(s.OutputDir, name), nil
}

// Explicit returns the names of the flags in fs that were set on the command
// line, so that callers can let them take precedence over a settings file.
func Explicit(fs *flag.FlagSet) mapset.Set[string] {
	var set mapset.Set[string]
	fs.Visit(func(f *flag.Flag) { set.Add(f.Name) })
	return set
}
