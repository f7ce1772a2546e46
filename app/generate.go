package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/keyformat"
	"github.com/tinygenkey/tinygenkey/internal/keygen"
	"github.com/tinygenkey/tinygenkey/internal/metrics"
)

func newGenerateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random keys",
		Example: `  tinygenkey generate
  tinygenkey generate -l 16 -p hex --prefix sk_ -n 3
  tinygenkey generate -l 20 -p uppercase --group 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.generate(cmd)
		},
	}

	f := cmd.Flags()
	f.IntP("length", "l", keygen.DefaultLength, "number of random characters")
	f.StringP("preset", "p", alphabet.Default, "preset alphabet")
	f.StringP("alphabet", "a", "", "explicit alphabet, overrides the configured preset")
	f.String("prefix", "", "literal prefix")
	f.String("suffix", "", "literal suffix")
	f.IntP("count", "n", 1, "number of keys")
	f.Int("group", 0, "insert a separator every N characters, 0 disables grouping")
	f.String("sep", keyformat.DefaultSeparator, "group separator")

	cmd.MarkFlagsMutuallyExclusive("preset", "alphabet")

	bindFlags(rt.v, f, map[string]string{
		"generate.length":   "length",
		"generate.preset":   "preset",
		"generate.alphabet": "alphabet",
		"generate.prefix":   "prefix",
		"generate.suffix":   "suffix",
		"generate.count":    "count",
		"generate.group":    "group",
		"generate.sep":      "sep",
	})

	return cmd
}

func (rt *runtime) generate(cmd *cobra.Command) error {
	var (
		v     = rt.v
		src   = alphabet.Preset(v.GetString("generate.preset"))
		group = v.GetInt("generate.group")
		sep   = v.GetString("generate.sep")
	)

	// a preset given on the command line beats an alphabet from the config
	if chars := v.GetString("generate.alphabet"); chars != "" && !cmd.Flags().Changed("preset") {
		src = alphabet.Custom(chars)
	}

	req := keygen.Request{
		Length: v.GetInt("generate.length"),
		Source: src,
		Prefix: v.GetString("generate.prefix"),
		Suffix: v.GetString("generate.suffix"),
	}

	keys, err := keygen.New(rt.presets, rt.sampler).GenerateBatch(v.GetInt("generate.count"), req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	label := src.Label()
	if label == "" {
		label = alphabet.Default
	}

	metrics.KeysGenerated(label, len(keys))

	log.Info().
		Str("batch", uuid.NewString()).
		Str("alphabet", label).
		Int("count", len(keys)).
		Int("length", req.Length).
		Msg("keys generated")

	out := cmd.OutOrStdout()

	for _, key := range keys {
		if group > 0 {
			if key, err = keyformat.Group(key, group, sep); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if _, err = fmt.Fprintln(out, key); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}
