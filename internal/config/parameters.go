// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Generator is a struct that contains the configuration for document generation.
	Generator generator
)

type global struct {
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
}

type generator struct {
	// TemplatesDir holds replacement template assets. Embedded assets are used when empty.
	TemplatesDir string `yaml:"templatesDir,omitempty"`
	// Template is the template used to generate the event schema.
	Template string `yaml:"template,omitempty" default:"json"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Generator),
	)
}

// Reset clears the configuration and applies the defaults.
func Reset() error {
	Global, Generator = global{}, generator{}
	return SetDefaults()
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global    global    `yaml:"global,omitempty"`
		Generator generator `yaml:"generator,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Generator = a.Generator

	return nil
}
