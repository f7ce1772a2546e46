// Package app implements the tinygenkey commands.
package app

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/config"
	"github.com/tinygenkey/tinygenkey/internal/logger"
	"github.com/tinygenkey/tinygenkey/internal/metrics"
	"github.com/tinygenkey/tinygenkey/internal/sampler"
)

// EnvPrefix prefixes every environment variable read through viper,
// e.g. TINYGENKEY_GENERATE_LENGTH.
const EnvPrefix = "TINYGENKEY"

// ErrInvalidKeys is returned by verify when at least one key failed validation.
var ErrInvalidKeys = errors.New("invalid keys")

// runtime is the state shared by all commands once the config is read.
type runtime struct {
	v       *viper.Viper
	entropy io.Reader // nil means crypto/rand

	cfg     config.Config
	presets alphabet.Table
	sampler *sampler.Sampler
}

func newRuntime(entropy io.Reader) *runtime {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &runtime{v: v, entropy: entropy}
}

func newRootCmd(rt *runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tinygenkey",
		Short: "tinygenkey generates and validates random string keys",
		Long: `tinygenkey generates random keys (tokens, identifiers, secrets) from a
preset or custom alphabet with an optional literal prefix and suffix, and
validates keys against charset, length and affix constraints.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return rt.setup()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "directory containing "+config.FileName+" (built-in defaults if empty)")
	pf.String("metrics-file", "", "write prometheus metrics to this textfile on exit")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error")

	bindFlags(rt.v, pf, map[string]string{
		"config.dir":       "config",
		"metrics.textfile": "metrics-file",
		"log.level":        "log-level",
	})

	rootCmd.AddCommand(
		newGenerateCmd(rt),
		newVerifyCmd(rt),
		newPresetsCmd(rt),
		newFormatCmd(rt),
		newReplCmd(rt),
		newConfigCmd(rt),
	)

	return rootCmd
}

// Execute runs the root command and writes the metrics textfile if one is configured.
func Execute() error {
	rt := newRuntime(nil)

	err := newRootCmd(rt).Execute()

	if mErr := rt.writeMetrics(); mErr != nil {
		log.Error().Err(mErr).Msg("failed to export metrics")
	}

	if err != nil && !errors.Is(err, ErrInvalidKeys) {
		log.Error().Err(err).Msg("command failed")
	}

	return err
}

// setup reads the config, layers it below flags and env, and builds the
// logger, the preset table and the sampler.
func (rt *runtime) setup() error {
	cfg, err := config.ReadConfig(rt.v.GetString("config.dir"))
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.setDefaults()

	rt.cfg.Log.LogLevel = rt.v.GetString("log.level")
	rt.cfg.Metrics.TextFile = rt.v.GetString("metrics.textfile")

	if err = logger.Init(rt.cfg.Log); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}

	if rt.presets, err = rt.cfg.PresetTable(); err != nil {
		return err
	}

	rt.sampler = sampler.New(rt.entropy, sampler.WithObserver(metrics.SamplerObserver{}))

	log.Debug().
		Str("config", rt.v.GetString("config.dir")).
		Strs("presets", rt.presets.Names()).
		Msg("tinygenkey ready")

	return nil
}

// setDefaults makes the config values the lowest viper layer.
func (rt *runtime) setDefaults() {
	var (
		g     = rt.cfg.Generate
		group = g.GroupSize
	)

	if group == 0 {
		group = defaultFormatGroup
	}

	defaults := map[string]any{
		"log.level":         rt.cfg.Log.LogLevel,
		"metrics.textfile":  rt.cfg.Metrics.TextFile,
		"generate.length":   g.Length,
		"generate.preset":   g.Preset,
		"generate.alphabet": g.Alphabet,
		"generate.prefix":   g.Prefix,
		"generate.suffix":   g.Suffix,
		"generate.count":    g.Count,
		"generate.group":    g.GroupSize,
		"generate.sep":      g.Separator,
		"verify.output":     rt.cfg.Verify.Output,
		"presets.output":    rt.cfg.Verify.Output,
		"format.group":      group,
		"format.sep":        g.Separator,
	}

	for key, value := range defaults {
		rt.v.SetDefault(key, value)
	}
}

func (rt *runtime) writeMetrics() error {
	path := rt.v.GetString("metrics.textfile")
	if path == "" {
		return nil
	}

	return metrics.WriteTextfile(path) //nolint:wrapcheck
}

// bindFlags binds viper keys to the flags of fs. Keys map to flag names.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(errors.Wrapf(err, "failed to bind flag %s", name))
		}
	}
}
