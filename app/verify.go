package app

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/keycheck"
	"github.com/tinygenkey/tinygenkey/internal/metrics"
	"github.com/tinygenkey/tinygenkey/internal/render"
)

func newVerifyCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify KEY...",
		Short: "Validate keys and print a report per key",
		Long: `Validate keys against an alphabet, length bounds and a literal prefix or suffix.
Lengths are measured on the key without its prefix and suffix.
Exits with a non-zero status if any key is invalid.`,
		Example: `  tinygenkey verify -p hex --min 16 --max 16 deadbeefdeadbeef
  tinygenkey verify -a abc --prefix k_ -o json k_abcabc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.verify(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringP("preset", "p", "", "preset alphabet")
	f.StringP("alphabet", "a", "", "explicit alphabet, an explicit empty value allows nothing")
	f.Int("min", 0, "minimum core length")
	f.Int("max", 0, "maximum core length")
	f.String("prefix", "", "expected literal prefix")
	f.String("suffix", "", "expected literal suffix")
	f.StringP("output", "o", string(render.Text), "output format: text, json or yaml")

	cmd.MarkFlagsMutuallyExclusive("preset", "alphabet")

	bindFlags(rt.v, f, map[string]string{
		"verify.preset":   "preset",
		"verify.alphabet": "alphabet",
		"verify.min":      "min",
		"verify.max":      "max",
		"verify.prefix":   "prefix",
		"verify.suffix":   "suffix",
		"verify.output":   "output",
	})

	return cmd
}

func (rt *runtime) verify(cmd *cobra.Command, keys []string) error {
	v := rt.v

	format, err := render.ParseFormat(v.GetString("verify.output"))
	if err != nil {
		return err //nolint:wrapcheck
	}

	c := keycheck.Constraints{
		Prefix: v.GetString("verify.prefix"),
		Suffix: v.GetString("verify.suffix"),
	}

	switch {
	case cmd.Flags().Changed("alphabet") || v.GetString("verify.alphabet") != "":
		c.Source = alphabet.Custom(v.GetString("verify.alphabet"))
	case v.GetString("verify.preset") != "":
		c.Source = alphabet.Preset(v.GetString("verify.preset"))
	}

	if v.IsSet("verify.min") {
		c.MinLength = keycheck.Int(v.GetInt("verify.min"))
	}

	if v.IsSet("verify.max") {
		c.MaxLength = keycheck.Int(v.GetInt("verify.max"))
	}

	validator := keycheck.New(rt.presets)

	var reports []keycheck.Report

	if len(keys) == 1 {
		report, err := validator.Validate(keys[0], c)
		if err != nil {
			return err //nolint:wrapcheck
		}

		reports = []keycheck.Report{report}
	} else if reports, err = validator.ValidateAll(keys, c); err != nil {
		return err //nolint:wrapcheck
	}

	invalid := 0

	for _, report := range reports {
		metrics.KeyValidated(report.Valid)

		if !report.Valid {
			invalid++
		}
	}

	log.Info().Int("keys", len(keys)).Int("invalid", invalid).Msg("keys validated")

	if err = render.Reports(cmd.OutOrStdout(), keys, reports, format); err != nil {
		return err //nolint:wrapcheck
	}

	if invalid > 0 {
		return errors.Wrapf(ErrInvalidKeys, "%d of %d", invalid, len(keys))
	}

	return nil
}
