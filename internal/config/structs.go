package config

import (
	"github.com/tinygenkey/tinygenkey/internal/logger"
)

// Config overall data structure.
type Config struct {
	Log      logger.Log
	Generate Generate
	Verify   Verify
	Presets  map[string]string // custom presets, name -> characters
	Metrics  Metrics
}

// Generate holds the defaults of the generate command.
type Generate struct {
	// Length is the core length, at most keygen.MaxLength.
	Length int `validate:"gte=0,lte=65536"`

	// Preset names the alphabet, empty means alphanumeric.
	Preset string

	// Alphabet is an explicit alphabet and wins over Preset.
	Alphabet string

	Prefix string
	Suffix string

	// Count is the number of keys per run.
	Count int `validate:"gte=1"`

	// GroupSize inserts Separator every GroupSize characters, 0 disables grouping.
	GroupSize int    `validate:"gte=0"`
	Separator string
}

// Verify holds the defaults of the verify command.
type Verify struct {
	Output string `validate:"oneof=text json yaml"`
}

// Metrics holds the metrics export settings.
type Metrics struct {
	TextFile string // node exporter textfile, empty disables the export
}
