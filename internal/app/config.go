package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// RootName selects the registered root config to resolve.
	RootName string
	// OverridesPath optionally points at an HCL attributes file whose
	// values are applied before the command-line tokens.
	OverridesPath string

	LogFormat string
	LogLevel  string
	// Output selects how the resolved tree is rendered: yaml, flat, or tree.
	Output string

	// Args are the raw option tokens to resolve against the tree.
	Args []string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RootName == "" {
		return nil, errors.New("RootName is a required configuration field and cannot be empty")
	}
	switch cfg.Output {
	case "yaml", "flat", "tree":
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'yaml', 'flat', or 'tree'", cfg.Output)
	}
	return &cfg, nil
}
