package config

import (
	"errors"
)

var (
	// ErrInvalidConfig error if a config value fails its validation rule.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownGeneratePreset error if generate.preset names no built-in or custom preset.
	ErrUnknownGeneratePreset = errors.New("toml config generate.preset is not a known preset")
)
