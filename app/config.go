package app

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tinygenkey/tinygenkey/internal/config"
)

// ErrUnknownDumpFormat is returned by the config command for formats other than toml and json.
var ErrUnknownDumpFormat = errors.New("unknown config dump format")

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				dump string
				err  error
			)

			switch format := strings.ToLower(rt.v.GetString("dump.output")); format {
			case "toml":
				dump, err = config.DumpConfig(&rt.cfg)
			case "json":
				dump, err = config.DumpConfigJSON(&rt.cfg)
			default:
				return errors.Wrapf(ErrUnknownDumpFormat, "%q", format)
			}

			if err != nil {
				return errors.Wrap(err, "failed to dump config")
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), dump)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringP("output", "o", "toml", "output format: toml or json")
	bindFlags(rt.v, cmd.Flags(), map[string]string{"dump.output": "output"})

	return cmd
}
