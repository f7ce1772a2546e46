// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/keyformat"
	"github.com/tinygenkey/tinygenkey/internal/keygen"
	"github.com/tinygenkey/tinygenkey/internal/logger"
)

const (
	// FileName is the name of the main config file inside the config directory.
	FileName = "main.toml"

	// JSONEnv holds a JSON document merged over the file config.
	JSONEnv = "TINYGENKEY_CONFIG_JSON"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: logger.Log{
			LogLevel:    "warn",
			AppName:     "tinygenkey",
			ServiceName: "cli",
			Console: logger.Console{
				Enabled:          true,
				UseConsoleWriter: true,
			},
		},
		Generate: Generate{
			Length:    keygen.DefaultLength,
			Preset:    alphabet.Default,
			Count:     1,
			Separator: keyformat.DefaultSeparator,
		},
		Verify: Verify{
			Output: "text",
		},
	}
}

// ReadConfig from config directory. An empty dir skips the file and starts
// from Default. The JSON env override is applied in both cases.
func ReadConfig(dir string) (Config, error) {
	var (
		c             = Default()
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if dir != "" {
		if _, err = toml.DecodeFile(filepath.Join(dir, FileName), &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	// override it from env
	JSONConfigEnv = os.Getenv(JSONEnv)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config from env")
	}

	return c, nil
}

// PresetTable builds the preset table holding the built-in and the custom presets.
func (c *Config) PresetTable() (alphabet.Table, error) {
	t, err := alphabet.NewTable(c.Presets)
	if err != nil {
		return alphabet.Table{}, errors.Wrap(err, "invalid custom presets")
	}

	return t, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the value rules of the struct tags, the custom presets
// and the default preset.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	table, err := c.PresetTable()
	if err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if c.Generate.Preset == "" {
		c.Generate.Preset = alphabet.Default
	}

	if c.Generate.Alphabet == "" && !table.Has(c.Generate.Preset) {
		return errors.Wrapf(ErrUnknownGeneratePreset, "%s: %q", invalidErrMessage, c.Generate.Preset)
	}

	return nil
}
