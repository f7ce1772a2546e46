package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinygenkey/tinygenkey/internal/keyformat"
)

// defaultFormatGroup is the format group size when the config sets no grouping.
const defaultFormatGroup = keyformat.DefaultGroupSize

func newFormatCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "format KEY...",
		Short:   "Split keys into groups joined by a separator",
		Example: "  tinygenkey format --group 5 --sep ' ' ABCDEFGHIJ",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := rt.v.GetInt("format.group")
			sep := rt.v.GetString("format.sep")

			for _, key := range args {
				grouped, err := keyformat.Group(key, size, sep)
				if err != nil {
					return err //nolint:wrapcheck
				}

				if _, err = fmt.Fprintln(cmd.OutOrStdout(), grouped); err != nil {
					return err //nolint:wrapcheck
				}
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.Int("group", keyformat.DefaultGroupSize, "characters per group")
	f.String("sep", keyformat.DefaultSeparator, "group separator")

	bindFlags(rt.v, f, map[string]string{
		"format.group": "group",
		"format.sep":   "sep",
	})

	return cmd
}
