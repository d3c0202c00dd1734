// Package config loads the run configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IgnoreAlways marks an output compiler entry that never contributes to
// the compilation database.
const IgnoreAlways = "always"

type Config struct {
	Output    Output    `yaml:"output"`
	Intercept Intercept `yaml:"intercept"`
}

type Output struct {
	// Path of the compilation database to write.
	Path string `yaml:"path"`
	// Per-compiler output filters.
	Compilers []Compiler `yaml:"compilers"`
}

type Compiler struct {
	Path   string `yaml:"path"`
	Ignore string `yaml:"ignore"`
}

type Intercept struct {
	// Executables to treat as compiler calls even when no built-in
	// classifier recognizes them.
	Executables []string `yaml:"executables"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Output: Output{Path: "compile_commands.json"},
	}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Output.Path == "" {
		return fmt.Errorf("output path must not be empty")
	}
	for _, compiler := range cfg.Output.Compilers {
		if compiler.Path == "" {
			return fmt.Errorf("output compiler entry misses its path")
		}
		if compiler.Ignore != "" && compiler.Ignore != IgnoreAlways {
			return fmt.Errorf("unknown ignore mode %q for %s", compiler.Ignore, compiler.Path)
		}
	}
	for _, executable := range cfg.Intercept.Executables {
		if executable == "" {
			return fmt.Errorf("intercept executable entry must not be empty")
		}
	}
	return nil
}

// CompilersToRecognize returns the explicit inclusion list for the
// recognition engine.
func (cfg *Config) CompilersToRecognize() []string {
	return append([]string(nil), cfg.Intercept.Executables...)
}

// CompilersToExclude returns the explicit exclusion list for the
// recognition engine.
func (cfg *Config) CompilersToExclude() []string {
	var excluded []string
	for _, compiler := range cfg.Output.Compilers {
		if compiler.Ignore == IgnoreAlways {
			excluded = append(excluded, compiler.Path)
		}
	}
	return excluded
}
