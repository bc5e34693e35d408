package repl

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ReplConfig holds the REPL's cosmetic, front-end-only settings: banner
// text, prompt string, and a history file path for readline to persist to.
// None of these affect language semantics (spec.md §6 describes the
// front-end only by its interface), so the zero value is a usable config —
// LoadConfig is purely an optional override.
type ReplConfig struct {
	Banner      string `yaml:"banner"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// LoadConfig reads a YAML file at path into a ReplConfig. Fields left out of
// the file keep their zero value, so a config file only needs to mention
// the settings it overrides.
func LoadConfig(path string) (ReplConfig, error) {
	var cfg ReplConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewWithConfig builds a Repl from a ReplConfig, falling back to the
// package defaults for any field left blank.
func NewWithConfig(cfg ReplConfig) *Repl {
	r := New()
	if cfg.Prompt != "" {
		r.Prompt = cfg.Prompt
	}
	if cfg.Banner != "" {
		r.Banner = cfg.Banner
	}
	r.HistoryFile = cfg.HistoryFile
	return r
}
