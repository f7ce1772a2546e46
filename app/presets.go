package app

import (
	"github.com/spf13/cobra"

	"github.com/tinygenkey/tinygenkey/internal/render"
)

func newPresetsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in and custom presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(rt.v.GetString("presets.output"))
			if err != nil {
				return err //nolint:wrapcheck
			}

			return render.Presets(cmd.OutOrStdout(), rt.presets, format) //nolint:wrapcheck
		},
	}

	cmd.Flags().StringP("output", "o", string(render.Text), "output format: text, json or yaml")
	bindFlags(rt.v, cmd.Flags(), map[string]string{"presets.output": "output"})

	return cmd
}
