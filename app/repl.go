package app

import (
	"github.com/spf13/cobra"

	"github.com/tinygenkey/tinygenkey/internal/keycheck"
	"github.com/tinygenkey/tinygenkey/internal/keygen"
	"github.com/tinygenkey/tinygenkey/internal/repl"
)

func newReplCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := repl.New(
				rt.presets,
				keygen.New(rt.presets, rt.sampler),
				keycheck.New(rt.presets),
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			)

			return session.Run() //nolint:wrapcheck
		},
	}
}
